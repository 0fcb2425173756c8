package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"casa/infras/otel/mocks"
	bookingModel "casa/internal/domains/booking/model"
	bookingRepository "casa/internal/domains/booking/repository"
	guestModel "casa/internal/domains/guest/model"
	guestRepository "casa/internal/domains/guest/repository"
	"casa/internal/domains/message/model"
	"casa/internal/domains/message/model/dto"
	"casa/internal/domains/message/repository"
	"casa/internal/domains/message/service"
	"casa/shared/timezone"
)

func newService(t *testing.T) (service.Message, repository.Message, guestRepository.Guest, bookingRepository.Booking) {
	t.Helper()

	messageRepo := repository.New()
	guestRepo := guestRepository.New()
	bookingRepo := bookingRepository.New()

	return service.New(messageRepo, guestRepo, bookingRepo, mocks.NewOtel()), messageRepo, guestRepo, bookingRepo
}

func TestMessageService_Create_Defaults(t *testing.T) {
	svc, _, _, _ := newService(t)

	res, err := svc.Create(context.Background(), dto.CreateMessageRequest{
		Content: "Your check-in code is 4821",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.TypeGeneral, res.Type)
	assert.Equal(t, model.ChannelInternal, res.Channel)
	assert.Equal(t, model.DirectionOutgoing, res.Direction)
	assert.False(t, res.IsRead)
	assert.NotEmpty(t, res.ID)
	assert.NotEmpty(t, res.SentAt)
}

func TestMessageService_GetAll_KeepsUnresolvedRelations(t *testing.T) {
	svc, messageRepo, guestRepo, bookingRepo := newService(t)

	err := guestRepo.Insert(context.Background(), guestModel.Guest{
		ID: "guest-1", Name: "Maria", Email: "maria@example.com", CreatedAt: timezone.Now(),
	})
	assert.NoError(t, err)

	err = bookingRepo.Insert(context.Background(), bookingModel.Booking{
		ID: "booking-1", GuestID: "guest-1", PropertyID: "prop-1", CreatedAt: timezone.Now(),
	})
	assert.NoError(t, err)

	err = messageRepo.Insert(context.Background(), model.Message{
		ID: "msg-1", GuestID: "guest-1", BookingID: "booking-1",
		Content: "hello", Channel: model.ChannelInternal, SentAt: timezone.Now(),
	})
	assert.NoError(t, err)

	err = messageRepo.Insert(context.Background(), model.Message{
		ID: "msg-2", GuestID: "gone", BookingID: "also-gone",
		Content: "orphan", Channel: model.ChannelInternal, SentAt: timezone.Now(),
	})
	assert.NoError(t, err)

	res, err := svc.GetAll(context.Background())
	assert.NoError(t, err)

	// Messages outlive their relations; the list never omits them.
	assert.Equal(t, 2, res.TotalData)

	assert.NotNil(t, res.Messages[0].Guest)
	assert.NotNil(t, res.Messages[0].Booking)
	assert.Nil(t, res.Messages[1].Guest)
	assert.Nil(t, res.Messages[1].Booking)
}

func TestMessageService_GetAllByChannel(t *testing.T) {
	svc, messageRepo, _, _ := newService(t)

	err := messageRepo.Insert(context.Background(), model.Message{
		ID: "msg-1", Content: "internal note", Channel: model.ChannelInternal, SentAt: timezone.Now(),
	})
	assert.NoError(t, err)

	err = messageRepo.Insert(context.Background(), model.Message{
		ID: "msg-2", Content: "wa text", Channel: model.ChannelWhatsApp, SentAt: timezone.Now(),
	})
	assert.NoError(t, err)

	res, err := svc.GetAllByChannel(context.Background(), model.ChannelWhatsApp)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "msg-2", res.Messages[0].ID)
}

func TestMessageService_GetAllWhatsApp_PhoneFilter(t *testing.T) {
	svc, messageRepo, _, _ := newService(t)

	err := messageRepo.Insert(context.Background(), model.Message{
		ID: "msg-1", Content: "outgoing", Channel: model.ChannelWhatsApp,
		FromNumber: "15550100", ToNumber: "5511912345678", SentAt: timezone.Now(),
	})
	assert.NoError(t, err)

	err = messageRepo.Insert(context.Background(), model.Message{
		ID: "msg-2", Content: "other thread", Channel: model.ChannelWhatsApp,
		FromNumber: "15550100", ToNumber: "5511999990000", SentAt: timezone.Now(),
	})
	assert.NoError(t, err)

	err = messageRepo.Insert(context.Background(), model.Message{
		ID: "msg-3", Content: "not whatsapp", Channel: model.ChannelEmail,
		ToNumber: "5511912345678", SentAt: timezone.Now(),
	})
	assert.NoError(t, err)

	t.Run("no phone returns every whatsapp message", func(t *testing.T) {
		res, err := svc.GetAllWhatsApp(context.Background(), "")

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
	})

	t.Run("phone matches stored numbers exactly", func(t *testing.T) {
		res, err := svc.GetAllWhatsApp(context.Background(), "5511912345678")

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, "msg-1", res.Messages[0].ID)
	})

	t.Run("formatted variant of a stored number does not match", func(t *testing.T) {
		res, err := svc.GetAllWhatsApp(context.Background(), "+55 (11) 91234-5678")

		assert.NoError(t, err)
		assert.Equal(t, 0, res.TotalData)
	})
}

func TestMessageService_Update(t *testing.T) {
	svc, messageRepo, _, _ := newService(t)

	sentAt := timezone.Now()

	err := messageRepo.Insert(context.Background(), model.Message{
		ID: "msg-1", Content: "original", Type: model.TypeGeneral,
		Channel: model.ChannelInternal, SentAt: sentAt,
	})
	assert.NoError(t, err)

	t.Run("partial update merges supplied fields only", func(t *testing.T) {
		isRead := true

		res, err := svc.Update(context.Background(), dto.UpdateMessageRequest{IsRead: &isRead}, "msg-1")

		assert.NoError(t, err)
		assert.True(t, res.IsRead)
		assert.Equal(t, "original", res.Content)
		assert.Equal(t, "msg-1", res.ID)
	})

	t.Run("unknown message returns not found", func(t *testing.T) {
		isRead := true

		_, err := svc.Update(context.Background(), dto.UpdateMessageRequest{IsRead: &isRead}, "missing")

		assert.Error(t, err)
	})
}

func TestMessageService_UpdateStatusByExternalID(t *testing.T) {
	svc, messageRepo, _, _ := newService(t)

	err := messageRepo.Insert(context.Background(), model.Message{
		ID: "msg-1", Content: "wa text", Channel: model.ChannelWhatsApp,
		Direction: model.DirectionOutgoing, WhatsAppMessageID: "wamid.123",
		WhatsAppStatus: model.StatusSent, SentAt: timezone.Now(),
	})
	assert.NoError(t, err)

	t.Run("known external id updates only the delivery status", func(t *testing.T) {
		err := svc.UpdateStatusByExternalID(context.Background(), "wamid.123", model.StatusDelivered)
		assert.NoError(t, err)

		message, found, err := messageRepo.Get(context.Background(), "msg-1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, model.StatusDelivered, message.WhatsAppStatus)
		assert.Equal(t, "wa text", message.Content)
		assert.Equal(t, model.DirectionOutgoing, message.Direction)
	})

	t.Run("unknown external id returns not found", func(t *testing.T) {
		err := svc.UpdateStatusByExternalID(context.Background(), "wamid.unknown", model.StatusRead)

		assert.Error(t, err)
	})
}

func TestMessageService_Delete(t *testing.T) {
	svc, messageRepo, _, _ := newService(t)

	err := messageRepo.Insert(context.Background(), model.Message{
		ID: "msg-1", Content: "bye", Channel: model.ChannelInternal, SentAt: timezone.Now(),
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), "msg-1"))
	assert.Error(t, svc.Delete(context.Background(), "msg-1"))
}
