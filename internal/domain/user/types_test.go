//go:build unit

package user_test

import (
	"testing"

	"court-booking/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		r, err := user.NewRole("operator")
		require.NoError(t, err)
		assert.Equal(t, user.RoleOperator, r)

		_, err = user.NewRole("viewer")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("hierarchy", func(t *testing.T) {
		testCases := []struct {
			role user.Role
			min  user.Role
			want bool
		}{
			{user.RoleCustomer, user.RoleCustomer, true},
			{user.RoleCustomer, user.RoleOperator, false},
			{user.RoleOperator, user.RoleOperator, true},
			{user.RoleAdmin, user.RoleOperator, true},
			{user.Role("ghost"), user.RoleCustomer, false},
		}
		for _, tc := range testCases {
			assert.Equal(t, tc.want, tc.role.AtLeast(tc.min), "%s >= %s", tc.role, tc.min)
		}
	})
}
