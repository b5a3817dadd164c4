package errs

import "github.com/gin-gonic/gin"

// PublicError attaches an error whose details may be shown to the caller.
func PublicError(c *gin.Context, err error) *gin.Error {
	return c.Error(err).SetType(gin.ErrorTypePublic)
}

// PrivateError attaches an upstream or internal error.
func PrivateError(c *gin.Context, err error) *gin.Error {
	return c.Error(err).SetType(gin.ErrorTypePrivate)
}
