package models

import "time"

type Employee struct {
	ID              uint       `gorm:"primaryKey" json:"employeeId"`
	EmployeeCode    string     `gorm:"size:50;index" json:"employeeCode"`
	EmployeeName    string     `gorm:"size:150;not null" json:"employeeName"`
	Email           *string    `gorm:"size:100" json:"email"`
	PhoneNumber     *string    `gorm:"size:20" json:"phoneNumber"`
	OfficeID        uint       `gorm:"index;not null" json:"officeId"`
	Office          *Office    `json:"-"`
	Department      *string    `gorm:"size:100" json:"department"`
	Designation     *string    `gorm:"size:100" json:"designation"`
	RoleID          *uint      `json:"roleId"`
	ReportsTo       *uint      `json:"reportsTo"`
	JoiningDate     *time.Time `json:"joiningDate"`
	LeavingDate     *time.Time `json:"leavingDate"`
	EmploymentType  *string    `gorm:"size:50" json:"employmentType"`
	DateOfBirth     *string    `gorm:"size:20" json:"dateOfBirth"`
	PanCard         *string    `gorm:"size:20" json:"panCard"`
	AadharCard      *string    `gorm:"size:20" json:"aadharCard"`
	Address1        *string    `gorm:"size:255" json:"address1"`
	Address2        *string    `gorm:"size:255" json:"address2"`
	City            *string    `gorm:"size:100" json:"city"`
	State           *string    `gorm:"size:100" json:"state"`
	Gender          *string    `gorm:"size:10" json:"gender"`
	ProfileImageURL *string    `gorm:"size:255" json:"profileImageUrl"`
	IsActive        bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedBy       *uint      `json:"createdBy"`
	ModifiedBy      *uint      `json:"modifiedBy"`
	CreatedAt       time.Time  `json:"createdOn"`
	UpdatedAt       time.Time  `json:"updatedOn"`
}

func (e Employee) PrimaryID() uint { return e.ID }

// Operation is a unit of work an employee or asset can be assigned to.
type Operation struct {
	ID            uint      `gorm:"primaryKey" json:"operationId"`
	OperationName string    `gorm:"size:150;not null" json:"operationName"`
	Description   *string   `gorm:"size:255" json:"description"`
	OfficeID      uint      `gorm:"index;not null" json:"officeId"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedBy     *uint     `json:"createdBy"`
	UpdatedBy     *uint     `json:"updatedBy"`
	CreatedAt     time.Time `json:"createdOn"`
	UpdatedAt     time.Time `json:"updatedOn"`
}

func (o Operation) PrimaryID() uint { return o.ID }

// EmployeeOperation maps an employee to the operations they can run.
// The map endpoint replaces the whole active set in one transaction.
type EmployeeOperation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EmployeeID  uint      `gorm:"index;not null" json:"employeeId"`
	OperationID uint      `gorm:"index;not null" json:"operationId"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedBy   *uint     `json:"createdBy"`
	UpdatedBy   *uint     `json:"updatedBy"`
	CreatedAt   time.Time `json:"createdOn"`
	UpdatedAt   time.Time `json:"updatedOn"`
}

func (eo EmployeeOperation) PrimaryID() uint { return eo.ID }

// EmployeeShift assigns an employee to a shift for a date range.
type EmployeeShift struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"index;not null" json:"employeeId"`
	ShiftID    uint      `gorm:"index;not null" json:"shiftId"`
	DateFrom   time.Time `json:"dateFrom"`
	DateTo     time.Time `json:"dateTo"`
	IsActive   bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedBy  uint      `json:"createdBy"`
	UpdatedBy  *uint     `json:"updatedBy"`
	CreatedAt  time.Time `json:"createdOn"`
	UpdatedAt  time.Time `json:"updatedOn"`
}

func (es EmployeeShift) PrimaryID() uint { return es.ID }
