// pkg/registry/schema.go
package registry

// ActivityRegistry is the catalogue of task types a BPMN modeller can bind
// service tasks to.
type ActivityRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

type Activity struct {
	TaskType    string   `json:"taskType"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Version     string   `json:"version"`
	Inputs      []Field  `json:"inputs"`
	Outputs     []Field  `json:"outputs"`
	ErrorCodes  []string `json:"errorCodes"`
	Timeout     string   `json:"timeout"`
	Tags        []string `json:"tags,omitempty"`
}

// Field names one process variable read or written by an activity.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required,omitempty"`
}
