package ai

// Result хранит результат обращения к сервису генерации.
// Либо сгенерированное значение, либо fallback с причиной. Value сообщает
// ok=false для fallback, поэтому вызывающий код обязан различать два случая.
type Result[T any] struct {
	value    T
	fallback bool
	cause    error
}

// Generated оборачивает значение, полученное от сервиса.
func Generated[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fallback оборачивает запасное значение и причину отказа.
func Fallback[T any](value T, cause error) Result[T] {
	return Result[T]{value: value, fallback: true, cause: cause}
}

// Value возвращает сгенерированное значение; ok=false для fallback.
func (r Result[T]) Value() (T, bool) {
	return r.value, !r.fallback
}

// Payload возвращает значение независимо от источника (для ответа клиенту).
func (r Result[T]) Payload() T {
	return r.value
}

// IsFallback сообщает, что значение запасное.
func (r Result[T]) IsFallback() bool {
	return r.fallback
}

// Cause возвращает причину fallback (nil для сгенерированного значения).
func (r Result[T]) Cause() error {
	return r.cause
}
