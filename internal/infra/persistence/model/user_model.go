package model

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	UserID   string `gorm:"type:varchar(64);primary_key"`
	UserName string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
