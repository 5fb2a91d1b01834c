// internal/types/types.go
package types

// EntityID: идентификатор сущности в ECS.
// Идентификаторы выдаются по возрастанию и никогда не переиспользуются,
// поэтому ID удалённой сущности безопасно хранить как слабую ссылку.
type EntityID uint64

// NoEntity означает отсутствие цели.
const NoEntity EntityID = 0
