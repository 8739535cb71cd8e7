package fluent

import (
	"time"

	"github.com/google/uuid"
)

// Result is a snapshot of a chain: the value it would return and the
// failure, if any, stamped with the chain id and creation time.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](id uuid.UUID, r T) Result[T] {
	return Result[T]{
		id:        id,
		createdAt: time.Now().UTC(),
		result:    r,
		isSuccess: true,
	}
}

func Fail[T any](id uuid.UUID, err error) Result[T] {
	return Result[T]{
		id:        id,
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// CreatedAt time creation (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Id of the chain the snapshot was taken from
func (r Result[T]) Id() uuid.UUID {
	return r.id
}
