package contentimporter

const payloadVersion = "v1"

type envelope struct {
	GameID  string `json:"game_id" yaml:"game_id"`
	Version string `json:"version" yaml:"version"`
	Source  string `json:"source" yaml:"source"`
}

type resourcePayload struct {
	envelope `yaml:",inline"`
	Items    []resourceRecord `json:"items" yaml:"items"`
}

type resourceRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Label       string   `json:"label" yaml:"label"`
	Icon        string   `json:"icon" yaml:"icon"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
}

type definitionPayload struct {
	envelope `yaml:",inline"`
	Items    []definitionRecord `json:"items" yaml:"items"`
}

type definitionRecord struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description" yaml:"description"`
}

type phasePayload struct {
	envelope `yaml:",inline"`
	Items    []phaseRecord `json:"items" yaml:"items"`
}

type phaseRecord struct {
	ID     string       `json:"id" yaml:"id"`
	Label  string       `json:"label" yaml:"label"`
	Icon   string       `json:"icon" yaml:"icon"`
	Action bool         `json:"action" yaml:"action"`
	Steps  []stepRecord `json:"steps" yaml:"steps"`
}

type stepRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Icon        string   `json:"icon" yaml:"icon"`
	Description string   `json:"description" yaml:"description"`
	Triggers    []string `json:"triggers" yaml:"triggers"`
}

type triggerPayload struct {
	envelope `yaml:",inline"`
	Items    []triggerRecord `json:"items" yaml:"items"`
}

type triggerRecord struct {
	ID     string `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Icon   string `json:"icon" yaml:"icon"`
	Future string `json:"future" yaml:"future"`
	Past   string `json:"past" yaml:"past"`
}
