package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/flowboard/flowboard-api/internal/models"
)

var registerOnce sync.Once

// RegisterValidators adds the task enum tags to gin's validator.
// Both tags accept any letter case.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
			_, ok := models.ParseTaskStatus(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("task_priority", func(fl validator.FieldLevel) bool {
			_, ok := models.ParseTaskPriority(fl.Field().String())
			return ok
		})
	})
}
