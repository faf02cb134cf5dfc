package models

import "time"

// Registration 代表一条参赛队伍报名记录。
// 参赛成员固定为4个槽位：1号位（队长）必填，2-4号位可选，
// 可选槽位缺省时各字段均以NULL入库。ref_id 依赖自增ID，插入后回填。
type Registration struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	RefID    *string `gorm:"column:ref_id;type:text" json:"ref_id"`
	Team     string  `gorm:"column:team;type:text;not null" json:"team"`
	College  string  `gorm:"column:college;type:text;not null" json:"college"`
	TeamSize int     `gorm:"column:team_size;not null;default:1" json:"team_size"`

	P1      string `gorm:"column:p1;type:text" json:"p1"`
	P1Phone string `gorm:"column:p1_phone;type:text" json:"p1_phone"`
	P1Email string `gorm:"column:p1_email;type:text" json:"p1_email"`
	P1Food  string `gorm:"column:p1_food;type:text" json:"p1_food"`

	P2      *string `gorm:"column:p2;type:text" json:"p2"`
	P2Phone *string `gorm:"column:p2_phone;type:text" json:"p2_phone"`
	P2Email *string `gorm:"column:p2_email;type:text" json:"p2_email"`
	P2Food  *string `gorm:"column:p2_food;type:text" json:"p2_food"`

	P3      *string `gorm:"column:p3;type:text" json:"p3"`
	P3Phone *string `gorm:"column:p3_phone;type:text" json:"p3_phone"`
	P3Email *string `gorm:"column:p3_email;type:text" json:"p3_email"`
	P3Food  *string `gorm:"column:p3_food;type:text" json:"p3_food"`

	P4      *string `gorm:"column:p4;type:text" json:"p4"`
	P4Phone *string `gorm:"column:p4_phone;type:text" json:"p4_phone"`
	P4Email *string `gorm:"column:p4_email;type:text" json:"p4_email"`
	P4Food  *string `gorm:"column:p4_food;type:text" json:"p4_food"`

	Medical   *string   `gorm:"column:medical;type:text" json:"medical"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (Registration) TableName() string {
	return "registrations"
}

// Participant 是单个成员槽位的展平视图，缺省字段为空字符串
type Participant struct {
	Name  string
	Phone string
	Email string
	Food  string
}

// Participants 按槽位顺序返回4个成员槽位
func (r *Registration) Participants() [4]Participant {
	return [4]Participant{
		{Name: r.P1, Phone: r.P1Phone, Email: r.P1Email, Food: r.P1Food},
		{Name: deref(r.P2), Phone: deref(r.P2Phone), Email: deref(r.P2Email), Food: deref(r.P2Food)},
		{Name: deref(r.P3), Phone: deref(r.P3Phone), Email: deref(r.P3Email), Food: deref(r.P3Food)},
		{Name: deref(r.P4), Phone: deref(r.P4Phone), Email: deref(r.P4Email), Food: deref(r.P4Food)},
	}
}

// RefIDString 返回回填后的报名编号，未回填时为空字符串
func (r *Registration) RefIDString() string {
	return deref(r.RefID)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
