package model

// ExplanationRecord AI 解释调用记录
type ExplanationRecord struct {
	BaseModel
	ID           int64  `json:"id" gorm:"primaryKey"`
	IP           string `json:"ip" gorm:"type:varchar(64);not null"`
	Kind         string `json:"kind" gorm:"type:varchar(16);not null"`
	TargetKey    string `json:"target_key" gorm:"type:varchar(64);not null"`
	Level        string `json:"level" gorm:"type:varchar(16);not null"`
	Source       string `json:"source" gorm:"type:varchar(16);index;not null"`
	Cached       bool   `json:"cached"`
	PromptTokens int    `json:"prompt_tokens"`
	LatencyMs    int64  `json:"latency_ms"`
}

// TableName ...
func (ExplanationRecord) TableName() string {
	return "explanation_records"
}
