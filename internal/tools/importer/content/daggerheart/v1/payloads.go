package catalogimporter

// payloadHeader is shared by every catalog file.
type payloadHeader struct {
	SystemID      string `json:"system_id"`
	SystemVersion string `json:"system_version"`
	Source        string `json:"source"`
	Locale        string `json:"locale"`
}

type domainPayload struct {
	payloadHeader
	Items []domainRecord `json:"items"`
}

type domainCardPayload struct {
	payloadHeader
	Items []domainCardRecord `json:"items"`
}

type classPayload struct {
	payloadHeader
	Items []classRecord `json:"items"`
}

type subclassPayload struct {
	payloadHeader
	Items []subclassRecord `json:"items"`
}

type domainRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type domainCardRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DomainID    string `json:"domain_id"`
	Level       int    `json:"level"`
	Type        string `json:"type"`
	RecallCost  int    `json:"recall_cost"`
	FeatureText string `json:"feature_text"`
}

type classRecord struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	DomainIDs []string `json:"domain_ids"`
}

type subclassRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ClassID string `json:"class_id"`
}
