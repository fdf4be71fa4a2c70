package mediator_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/tradewinds-go/internal/application/mediator"
)

type pingCommand struct{ Value string }

type pingResponse struct{ Echo string }

func pingHandler() mediator.HandlerFunc {
	return func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		cmd := request.(*pingCommand)
		return &pingResponse{Echo: cmd.Value}, nil
	}
}

func TestMediator_DispatchesByType(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, m.Register(reflect.TypeOf(&pingCommand{}), pingHandler()))

	// Act
	resp, err := m.Send(context.Background(), &pingCommand{Value: "hello"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.(*pingResponse).Echo)
}

func TestMediator_RejectsDuplicateAndUnknown(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, pingHandler()))

	err := m.Register(reflect.TypeOf(&pingCommand{}), pingHandler())
	assert.Error(t, err)

	_, err = m.Send(context.Background(), &pingResponse{})
	assert.Error(t, err)

	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, m.Register(reflect.TypeOf(&pingCommand{}), pingHandler()))
	var calls []string
	trace := func(name string) mediator.Middleware {
		return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			calls = append(calls, name+":before")
			resp, err := next(ctx, request)
			calls = append(calls, name+":after")
			return resp, err
		}
	}
	m.Use(trace("outer"))
	m.Use(trace("inner"))

	// Act
	_, err := m.Send(context.Background(), &pingCommand{Value: "x"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, calls)
}

func TestMediator_MiddlewareSeesErrors(t *testing.T) {
	m := mediator.NewMediator()
	boom := errors.New("boom")
	require.NoError(t, m.Register(reflect.TypeOf(&pingCommand{}), mediator.HandlerFunc(
		func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
			return nil, boom
		})))
	var seen error
	m.Use(func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		resp, err := next(ctx, request)
		seen = err
		return resp, err
	})

	_, err := m.Send(context.Background(), &pingCommand{})

	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, seen, boom)
}

func TestRequestName(t *testing.T) {
	assert.Equal(t, "pingCommand", mediator.RequestName(&pingCommand{}))
	assert.Equal(t, "nil", mediator.RequestName(nil))
}
