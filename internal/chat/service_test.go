package chat

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/nextlayer-studio/storefront-backend/pkg/errors"
	"github.com/nextlayer-studio/storefront-backend/pkg/logger"
)

type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) Generate(context.Context, string) (string, error) {
	return s.reply, s.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "chat-test", Output: io.Discard})
}

func TestSendMessage(t *testing.T) {
	svc, err := NewService(&stubGenerator{reply: "El PLA es ideal para piezas decorativas."}, testLogger(), nil)
	require.NoError(t, err)

	dto, err := svc.SendMessage(context.Background(), "¿Qué material me conviene?")
	require.NoError(t, err)
	require.Equal(t, "El PLA es ideal para piezas decorativas.", dto.Reply)
}

func TestSendMessageWithoutGenerator(t *testing.T) {
	svc, err := NewService(nil, testLogger(), nil)
	require.NoError(t, err)

	dto, err := svc.SendMessage(context.Background(), "hola")
	require.NoError(t, err)
	require.Equal(t, ReplyUnavailable, dto.Reply)
}

func TestSendMessageProviderError(t *testing.T) {
	svc, err := NewService(&stubGenerator{err: fmt.Errorf("quota exceeded")}, testLogger(), nil)
	require.NoError(t, err)

	dto, err := svc.SendMessage(context.Background(), "hola")
	require.NoError(t, err)
	require.Equal(t, ReplyError, dto.Reply)
}

func TestSendMessageEmptyCompletion(t *testing.T) {
	svc, err := NewService(&stubGenerator{reply: ""}, testLogger(), nil)
	require.NoError(t, err)

	dto, err := svc.SendMessage(context.Background(), "hola")
	require.NoError(t, err)
	require.Equal(t, ReplyEmpty, dto.Reply)
}

func TestSendMessageRequiresText(t *testing.T) {
	svc, err := NewService(&stubGenerator{reply: "x"}, testLogger(), nil)
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), "   ")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
