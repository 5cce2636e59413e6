package model

// ImportBatchLog tracks one staged spreadsheet import through its two
// phases: staged (validated, awaiting operator confirmation) and committed.
// Result holds the JSON summary of the last phase.
type ImportBatchLog struct {
	ID              int64  `gorm:"primary_key;auto_increment" json:"id"`
	FileName        string `gorm:"size:100;not null" json:"file_name"`
	FileUrl         string `gorm:"size:255;not null" json:"file_url"`
	TotalGroups     int64  `gorm:"not null" json:"total_groups"`
	CommittedGroups int64  `gorm:"not null" json:"committed_groups"`
	Status          int    `gorm:"not null" json:"status"`
	Result          string `gorm:"type:text;not null" json:"result"`
	CreateTime      int64  `gorm:"not null" json:"create_time"`
	CreateBy        string `gorm:"size:100;not null" json:"create_by"`
	UpdateTime      int64  `gorm:"not null" json:"update_time"`
	UpdateBy        string `gorm:"size:100;not null" json:"update_by"`
}
