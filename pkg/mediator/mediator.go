// Package mediator связывает команду или запрос ровно с одним обработчиком
// и оборачивает вызов упорядоченной цепочкой behaviors (валидация и т.п.).
// Цепочка собирается явно при старте сервиса, без рефлексии и DI-контейнеров.
package mediator

import (
	"context"

	"octobermarket/pkg/result"
)

// Handler - единственный обработчик одной команды или запроса
type Handler[Req any, Res any] func(ctx context.Context, req Req) result.Result[Res]

// Behavior - сквозная логика вокруг вызова обработчика.
// Получает следующий шаг цепочки и возвращает обернутый обработчик.
type Behavior[Req any, Res any] func(next Handler[Req, Res]) Handler[Req, Res]

// Apply оборачивает обработчик цепочкой behaviors.
// Применяются в обратном порядке: для A, B выполнение идет A -> B -> handler.
func Apply[Req any, Res any](h Handler[Req, Res], behaviors ...Behavior[Req, Res]) Handler[Req, Res] {
	for i := len(behaviors) - 1; i >= 0; i-- {
		h = behaviors[i](h)
	}
	return h
}

// Pipeline направляет запрос в свой обработчик через цепочку behaviors
type Pipeline[Req any, Res any] struct {
	handler Handler[Req, Res]
}

// New собирает pipeline: валидация выполняется первой, затем переданные
// behaviors, последним вызывается обработчик
func New[Req any, Res any](h Handler[Req, Res], behaviors ...Behavior[Req, Res]) *Pipeline[Req, Res] {
	chain := append([]Behavior[Req, Res]{Validation[Req, Res]()}, behaviors...)
	return &Pipeline[Req, Res]{handler: Apply(h, chain...)}
}

// Send выполняет запрос. Отмененный контекст прерывает выполнение
// до вызова обработчика и не считается доменной ошибкой.
func (p *Pipeline[Req, Res]) Send(ctx context.Context, req Req) (result.Result[Res], error) {
	if err := ctx.Err(); err != nil {
		var zero result.Result[Res]
		return zero, err
	}
	return p.handler(ctx, req), nil
}

// Validatable реализуют команды и запросы с декларативными правилами.
// Validate не выполняет I/O - межсущностные проверки принадлежат обработчикам.
type Validatable interface {
	Validate() []result.Error
}

// Validation возвращает behavior, который прогоняет валидатор запроса
// до обработчика. При ошибках цепочка обрывается и возвращается
// Failure с ValidationError нужного статического типа - обобщенный
// параметр Res дает это без инспекции типов.
func Validation[Req any, Res any]() Behavior[Req, Res] {
	return func(next Handler[Req, Res]) Handler[Req, Res] {
		return func(ctx context.Context, req Req) result.Result[Res] {
			v, ok := any(req).(Validatable)
			if !ok {
				return next(ctx, req)
			}

			failures := v.Validate()
			if len(failures) == 0 {
				return next(ctx, req)
			}

			return result.Failure[Res](result.NewValidationError(failures))
		}
	}
}
