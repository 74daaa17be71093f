package view

type FlashKind string

const (
	FlashInfo    FlashKind = "info"
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

type Flash struct {
	Kind    FlashKind         `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"` // form alan hataları
}
