package result

import "fmt"

// Unit используется как тип значения для операций без полезной нагрузки
type Unit struct{}

// Result представляет исход операции: либо значение типа T, либо одна *Error.
// Одновременно значение и ошибка невозможны - конструкторы следят за этим.
type Result[T any] struct {
	value T
	err   *Error
	ok    bool
}

// Success создает успешный Result со значением
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure создает Result с ошибкой
// Паникует если err == nil: неуспех без ошибки - баг в вызывающем коде
func Failure[T any](err *Error) Result[T] {
	if err == nil {
		panic("result: Failure called with nil error")
	}
	return Result[T]{err: err}
}

// Ok создает успешный Result без полезной нагрузки
func Ok() Result[Unit] {
	return Success(Unit{})
}

// Fail создает неуспешный Result без полезной нагрузки
func Fail(err *Error) Result[Unit] {
	return Failure[Unit](err)
}

// IsSuccess сообщает, завершилась ли операция успешно
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure сообщает, завершилась ли операция ошибкой
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value возвращает значение успешного Result
// Паникует при вызове на неуспешном Result - проверяйте IsSuccess
func (r Result[T]) Value() T {
	if !r.ok {
		panic(fmt.Sprintf("result: Value called on failure result (%s)", r.err.Code))
	}
	return r.value
}

// Error возвращает ошибку неуспешного Result
// Паникует при вызове на успешном Result
func (r Result[T]) Error() *Error {
	if r.ok {
		panic("result: Error called on success result")
	}
	return r.err
}

// Match вызывает onSuccess или onFailure в зависимости от исхода
func (r Result[T]) Match(onSuccess func(T), onFailure func(*Error)) {
	if r.ok {
		onSuccess(r.value)
		return
	}
	onFailure(r.err)
}
