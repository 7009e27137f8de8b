package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/errors"
)

// ErrorBody là cấu trúc lỗi trả về cho client
type ErrorBody struct {
	Error string `json:"error"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created trả về response tạo mới thành công
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// ValidationError trả về response lỗi validation
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: message})
}

// Conflict trả về response xung đột dữ liệu (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorBody{Error: message})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Lỗi server"})
}

// TooManyRequests trả về response khi bị giới hạn tần suất
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, ErrorBody{Error: "Quá nhiều yêu cầu, thử lại sau"})
}

// FromAppError ánh xạ mã lỗi AppError sang HTTP status tương ứng
func FromAppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidDate,
		errors.ErrCodeInvalidStatus, errors.ErrCodeInvalidAmount,
		errors.ErrCodeChargeNotFound:
		BadRequest(c, appErr.Message)
	case errors.ErrCodeRoomNotFound, errors.ErrCodeDBNotFound:
		NotFound(c, appErr.Message)
	case errors.ErrCodeBookingConflict, errors.ErrCodeDBDuplicate:
		Conflict(c, appErr.Message)
	default:
		ServerError(c)
	}
}
