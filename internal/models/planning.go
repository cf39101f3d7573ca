package models

import "time"

type JobCard struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrderNo        *string   `gorm:"size:50" json:"orderNo"`
	IsCode         *string   `gorm:"size:50" json:"isCode"`
	Date           time.Time `gorm:"not null" json:"date"`
	AssetID        uint      `gorm:"index;not null" json:"assetId"`
	ShiftID        uint      `gorm:"not null" json:"shiftId"`
	OperationID    uint      `gorm:"not null" json:"operationId"`
	Size           *int      `json:"size"`
	NoDiaOfStands  *string   `gorm:"size:50" json:"noDiaOfStands"`
	Shape          *string   `gorm:"size:50" json:"shape"`
	IsCompacted    bool      `gorm:"not null;default:false" json:"isCompacted"`
	Compound       *string   `gorm:"size:50" json:"compound"`
	Color          *string   `gorm:"size:50" json:"color"`
	Thickness      *string   `gorm:"size:50" json:"thickness"`
	Length         *string   `gorm:"size:50" json:"length"`
	NoDiaOfAmWire  *string   `gorm:"size:50" json:"noDiaOfAmWire"`
	PayOffDno      *string   `gorm:"size:50" json:"payOffDno"`
	TakeUpDrumSize *string   `gorm:"size:50" json:"takeUpDrumSize"`
	Embrossing     *string   `gorm:"size:100" json:"embrossing"`
	Remark         *string   `gorm:"size:255" json:"remark"`
	OfficeID       uint      `gorm:"index;not null" json:"officeId"`
	IsActive       bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedBy      uint      `json:"createdBy"`
	UpdatedBy      *uint     `json:"updatedBy"`
	CreatedAt      time.Time `json:"createdOn"`
	UpdatedAt      time.Time `json:"updatedOn"`
}

func (j JobCard) PrimaryID() uint { return j.ID }

// PlanningSheet is one line of the daily planning board.
type PlanningSheet struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OfficeID    uint      `gorm:"index;not null" json:"officeId"`
	PlanDate    time.Time `gorm:"index;not null" json:"planDate"`
	EmployeeID  uint      `gorm:"not null" json:"employeeId"`
	OperationID uint      `gorm:"not null" json:"operationId"`
	AssetID     uint      `gorm:"not null" json:"assetId"`
	ItemID      uint      `gorm:"not null" json:"itemId"`
	ShiftID     uint      `gorm:"not null" json:"shiftId"`
	Manpower    int       `gorm:"not null;default:0" json:"manpower"`
	Target      *int      `json:"target"`
	Achieved    *int      `json:"achieved"`
	Backfeed    *string   `gorm:"size:255" json:"backfeed"`
	Remarks     *string   `gorm:"size:255" json:"remarks"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedBy   uint      `json:"createdBy"`
	UpdatedBy   *uint     `json:"updatedBy"`
	CreatedAt   time.Time `json:"createdOn"`
	UpdatedAt   time.Time `json:"updatedOn"`
}

func (p PlanningSheet) PrimaryID() uint { return p.ID }
