package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/api/middleware"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/jwt"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/response"
)

// bindBody binds a JSON or multipart body into obj and writes the validation
// envelope on failure. The caller returns immediately when it reports false.
func bindBody(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

// bindQuery is bindBody for query parameters.
func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

func writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]response.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, response.FieldError{
				Field:   lowerFirst(fe.Field()),
				Message: validationMessage(fe),
			})
		}
		response.ValidationFailed(c, fields)
		return
	}
	response.BadRequest(c, "Invalid request body")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// userID returns the authenticated account id. Auth middleware guarantees it
// on protected routes.
func userID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}

// isAuthenticated reports whether the optional-auth middleware resolved a
// user on this request.
func isAuthenticated(c *gin.Context) bool {
	_, ok := c.Get(middleware.CtxUserID)
	return ok
}

// tokenClaims returns the parsed claims of the presented token.
func tokenClaims(c *gin.Context) *jwt.Claims {
	v, ok := c.Get(middleware.CtxClaims)
	if !ok {
		return nil
	}
	return v.(*jwt.Claims)
}
