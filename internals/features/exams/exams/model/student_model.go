package model

// StudentModel rows are created by roster ingestion only and cascade with their exam.
type StudentModel struct {
	ID         uint    `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ExamID     uint    `json:"exam_id" gorm:"column:exam_id;not null;index:idx_students_exam"`
	RollNumber string  `json:"roll_number" gorm:"column:roll_number;type:text;not null"`
	Name       string  `json:"name" gorm:"column:name;type:text;not null"`
	ImageURL   *string `json:"image_url" gorm:"column:image_url;type:text"`

	Exam *ExamModel `json:"-" gorm:"foreignKey:ExamID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (StudentModel) TableName() string { return "students" }
