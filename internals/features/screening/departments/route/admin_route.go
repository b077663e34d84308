package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	departmentcontroller "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/controller"
)

func DepartmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := departmentcontroller.NewDepartmentController(db)

	depts := admin.Group("/departments")
	depts.Post("/", ctl.CreateDepartment)
	depts.Get("/", ctl.ListDepartments)
	depts.Get("/:id", ctl.GetDepartment)
	depts.Put("/:id", ctl.UpdateDepartment)
}
