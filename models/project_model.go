package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model
	ProjectCode string `json:"project_code" gorm:"unique"`
	ProjectName string `json:"project_name"`
	Status      string `json:"status" gorm:"default:'open'"` // open, en cours, done
	ClientID    uint   `json:"client_id"`
	Client      Client `gorm:"foreignKey:ClientID"`
	StartDate   string `json:"start_date"`
	DueDate     string `json:"due_date"`
	Tasks       []Task `json:"tasks" gorm:"foreignKey:ProjectID;references:ID"`
	Remarks     string `json:"remarks"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

type Task struct {
	gorm.Model
	ProjectID  uint   `json:"project_id"`
	Title      string `json:"title"`
	Done       bool   `json:"done" gorm:"default:false"`
	AssignedTo uint   `json:"assigned_to"`
	DueDate    string `json:"due_date"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}
