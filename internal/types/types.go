package types

// EntityID — идентификатор сущности (башни, врага или снаряда).
// Ноль означает «нет сущности».
type EntityID uint64
