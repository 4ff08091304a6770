package types

// EntityID: идентификатор сущности в мире.
// Ноль зарезервирован под «нет сущности».
type EntityID uint64
