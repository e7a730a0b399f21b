package i18n

var ptBRMessages = map[Code]string{
	CodeUnknown: "Ocorreu um erro inesperado",

	CodeLevelUpInvalidLevel:         "O nível {{.Level}} não pode ser alcançado subindo de nível; alvos vão de 2 a 10",
	CodeLevelUpLevelAlreadyRecorded: "O nível {{.Level}} já foi registrado para este personagem",

	CodeLevelUpAutoExperienceRequired:   "Dê um nome à nova experiência do nível {{.Level}}",
	CodeLevelUpAutoDomainCardRequired:   "Escolha uma carta de domínio por alcançar o nível {{.Level}}",
	CodeLevelUpAutoDomainCardIneligible: "A carta de domínio {{.CardID}} não está disponível no nível {{.Level}}",

	CodeLevelUpUnknownUpgrade:       "Melhoria desconhecida: {{.Upgrade}}",
	CodeLevelUpUpgradeUnavailable:   "A melhoria {{.Upgrade}} não está disponível ({{.Reason}})",
	CodeLevelUpBudgetUnmet:          "As melhorias escolhidas custam {{.Spent}} de {{.Budget}} pontos",
	CodeLevelUpStatSelectionInvalid: "Escolha dois atributos diferentes para aumentar",
	CodeLevelUpStatAlreadyBoosted:   "O atributo {{.Stat}} já foi aumentado neste patamar",
	CodeLevelUpExperienceInvalid:    "Escolha duas experiências existentes diferentes",
	CodeLevelUpDomainCardInvalid:    "Escolha uma carta de domínio disponível no nível {{.Level}}",
	CodeLevelUpMulticlassInvalid:    "Escolha uma classe, um de seus domínios e uma de suas subclasses",
	CodeLevelUpHistoryInvalid:       "O histórico de níveis é inválido",
	CodeLevelUpCharacterInvalid:     "A progressão do personagem é inválida",
	CodeLevelUpCharacterIDRequired:  "O ID do personagem é obrigatório",
	CodeLevelUpProgressionExists:    "A progressão do personagem já existe",
	CodeLevelUpProgressionConflict:  "O personagem mudou durante a subida de nível; recarregue e tente novamente",
	CodeLevelUpProgressionCorrupt:   "A progressão salva do personagem falhou na verificação de integridade",

	CodeContentInvalid: "Entrada do catálogo de conteúdo inválida",

	CodeNotFound: "O recurso solicitado não foi encontrado",
}
