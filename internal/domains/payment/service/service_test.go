package service_test

import (
	"context"
	"errors"
	"hotelops/config"
	"hotelops/infras/otel/mocks"
	"hotelops/infras/stripe"
	stripeMocks "hotelops/infras/stripe/mocks"
	"hotelops/internal/domains/payment/model/dto"
	"hotelops/internal/domains/payment/service"
	eventMocks "hotelops/shared/event/mocks"
	"hotelops/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPaymentService_CreateIntent(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.PaymentIntentRequest
		setupMock func(gateway *stripeMocks.MockGateway, publisher *eventMocks.MockPublisher)
		want      dto.PaymentIntentResponse
		wantCode  int
	}{
		{
			name: "default currency and minor units",
			req:  dto.PaymentIntentRequest{Amount: 450.5, BookingID: "b-1"},
			setupMock: func(gateway *stripeMocks.MockGateway, publisher *eventMocks.MockPublisher) {
				gateway.EXPECT().
					CreatePaymentIntent(gomock.Any(), int64(45050), "usd", map[string]string{dto.MetadataBookingID: "b-1"}).
					Return(stripe.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil)
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: dto.PaymentIntentResponse{ClientSecret: "pi_1_secret", PaymentIntentID: "pi_1"},
		},
		{
			name: "explicit currency is lower cased",
			req:  dto.PaymentIntentRequest{Amount: 19.99, Currency: "PHP", OrderID: "o-1"},
			setupMock: func(gateway *stripeMocks.MockGateway, publisher *eventMocks.MockPublisher) {
				gateway.EXPECT().
					CreatePaymentIntent(gomock.Any(), int64(1999), "php", map[string]string{dto.MetadataOrderID: "o-1"}).
					Return(stripe.PaymentIntent{ID: "pi_2", ClientSecret: "pi_2_secret"}, nil)
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: dto.PaymentIntentResponse{ClientSecret: "pi_2_secret", PaymentIntentID: "pi_2"},
		},
		{
			name:      "rounds to zero cents",
			req:       dto.PaymentIntentRequest{Amount: 0.001},
			setupMock: func(_ *stripeMocks.MockGateway, _ *eventMocks.MockPublisher) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "provider rejects",
			req:  dto.PaymentIntentRequest{Amount: 10},
			setupMock: func(gateway *stripeMocks.MockGateway, _ *eventMocks.MockPublisher) {
				gateway.EXPECT().CreatePaymentIntent(gomock.Any(), int64(1000), "usd", map[string]string{}).
					Return(stripe.PaymentIntent{}, failure.BadGateway("payment provider error"))
			},
			wantCode: http.StatusBadGateway,
		},
		{
			name: "unexpected error",
			req:  dto.PaymentIntentRequest{Amount: 10},
			setupMock: func(gateway *stripeMocks.MockGateway, _ *eventMocks.MockPublisher) {
				gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(stripe.PaymentIntent{}, errors.New("timeout"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			gateway := stripeMocks.NewMockGateway(ctrl)
			publisher := eventMocks.NewMockPublisher(ctrl)
			tt.setupMock(gateway, publisher)

			cfg := &config.Config{}
			cfg.External.Stripe.Currency = "USD"

			res, err := service.New(gateway, cfg, mocks.NewOtel(), publisher).CreateIntent(context.Background(), tt.req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}
