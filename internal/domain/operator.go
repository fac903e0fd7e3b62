package domain

import (
	"time"
)

// SysOpr is a management console operator account. Passwords are stored
// as salted sha256 digests.
type SysOpr struct {
	ID        int64     `json:"id,string" form:"id"`
	Realname  string    `json:"realname" form:"realname"`
	Username  string    `gorm:"uniqueIndex" json:"username" form:"username"`
	Password  string    `json:"-" form:"password"`
	Level     string    `json:"level" form:"level"`
	Status    string    `json:"status" form:"status"`
	Remark    string    `json:"remark" form:"remark"`
	LastLogin time.Time `json:"last_login" form:"last_login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (SysOpr) TableName() string {
	return "sys_opr"
}

// SysOprLog records operator actions on the management console.
type SysOprLog struct {
	ID        int64     `json:"id,string"`
	Username  string    `gorm:"index" json:"username"`
	Action    string    `gorm:"index" json:"action"`
	Remark    string    `json:"remark"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName Specify table name
func (SysOprLog) TableName() string {
	return "sys_opr_log"
}
