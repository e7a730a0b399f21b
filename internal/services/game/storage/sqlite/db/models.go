package db

type DaggerheartClass struct {
	ID            string
	Name          string
	DomainIdsJson string
	CreatedAt     int64
	UpdatedAt     int64
}

type DaggerheartDomain struct {
	ID          string
	Name        string
	Description string
	CreatedAt   int64
	UpdatedAt   int64
}

type DaggerheartDomainCard struct {
	ID          string
	Name        string
	DomainID    string
	Level       int64
	Type        string
	RecallCost  int64
	FeatureText string
	CreatedAt   int64
	UpdatedAt   int64
}

type DaggerheartProgression struct {
	CharacterID        string
	Level              int64
	ProfileJson        string
	LevelUpChoicesJson string
	Version            int64
	ContentHash        string
	Signature          string
	SignatureKeyID     string
	CreatedAt          int64
	UpdatedAt          int64
}

type DaggerheartSubclass struct {
	ID        string
	Name      string
	ClassID   string
	CreatedAt int64
	UpdatedAt int64
}
