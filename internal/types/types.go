// internal/types/types.go
package types

// EntityID — дескриптор сущности. Идентификаторы выдаются монотонно и
// никогда не переиспользуются, поэтому «висячий» ID просто не находится в хранилище.
type EntityID uint64

// None — отсутствие ссылки (например, у башни нет цели).
const None EntityID = 0
