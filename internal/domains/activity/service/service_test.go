package service_test

import (
	"context"
	"errors"
	"hotelops/infras/otel/mocks"
	activityMocks "hotelops/internal/domains/activity/mocks"
	"hotelops/internal/domains/activity/model"
	"hotelops/internal/domains/activity/service"
	gDto "hotelops/shared/dto"
	"hotelops/shared/event"
	"hotelops/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestActivityService_Record(t *testing.T) {
	evt := event.Named(event.NameOrderStatus, "order", "o-1", "alice", map[string]string{"from": "pending", "to": "preparing"})

	tests := []struct {
		name      string
		evt       event.Event
		setupMock func(repo *activityMocks.MockActivity)
		wantErr   bool
	}{
		{
			name: "stores the event",
			evt:  evt,
			setupMock: func(repo *activityMocks.MockActivity) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Activity) error {
						assert.Equal(t, evt.ID, m.ID)
						assert.Equal(t, "order.status_changed", m.Event)
						assert.Equal(t, "o-1", m.EntityID)
						assert.JSONEq(t, `{"from":"pending","to":"preparing"}`, m.Payload)

						return nil
					})
			},
		},
		{
			name: "redelivery is ignored",
			evt:  evt,
			setupMock: func(repo *activityMocks.MockActivity) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.ConflictField("id", "Id already exists"))
			},
		},
		{
			name:      "event without id",
			evt:       event.Event{Name: "room.created"},
			setupMock: func(_ *activityMocks.MockActivity) {},
			wantErr:   true,
		},
		{
			name: "database error",
			evt:  evt,
			setupMock: func(repo *activityMocks.MockActivity) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := activityMocks.NewMockActivity(ctrl)
			tt.setupMock(repo)

			err := service.New(repo, mocks.NewOtel()).Record(context.Background(), tt.evt)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestActivityService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := activityMocks.NewMockActivity(ctrl)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(21, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Activity{
		{ID: "a-1", Event: "room.created", Payload: `{"room_number":"101"}`},
		{ID: "a-2", Event: "room.deleted", Payload: ""},
	}, nil)

	res, err := service.New(repo, mocks.NewOtel()).GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, 21, res.TotalData)
	assert.JSONEq(t, `{"room_number":"101"}`, string(res.Activities[0].Payload))
	assert.JSONEq(t, `{}`, string(res.Activities[1].Payload))
}
