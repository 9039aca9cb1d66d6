package api

import (
	"strconv"

	"court-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errInvalidID = errs.New("invalid id")

func positiveIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errs.Wrapf(err, "parse %s", name)
	}
	if id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
