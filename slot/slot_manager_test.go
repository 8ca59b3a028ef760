package slot_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hanksha/skillbridge-bff/model"
	"github.com/hanksha/skillbridge-bff/slot"
	slot_mocks "github.com/hanksha/skillbridge-bff/slot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var tutor = model.Credentials{Cookie: "better-auth.session_token=tutor", UserID: "u1", Role: model.RoleTutor}

var profile = &model.TutorProfile{ID: "tp1", UserID: "u1"}

type testDeps struct {
	api     *slot_mocks.MockSlotAPI
	manager *slot.Manager
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := slot_mocks.NewMockSlotAPI(ctrl)

	return ctrl, testDeps{api: api, manager: slot.NewManager(api), ctx: context.Background()}
}

func TestList(t *testing.T) {
	t.Run("free slots first", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.api.EXPECT().GetMyProfile(testDeps.ctx, tutor).Return(profile, nil).Times(1)
		testDeps.api.EXPECT().GetSlotsByTutor(testDeps.ctx, tutor, "tp1").Return([]model.Slot{
			{ID: "a", IsBooked: true},
			{ID: "b"},
			{ID: "c", IsBooked: true},
			{ID: "d"},
		}, nil).Times(1)

		slots, err := testDeps.manager.List(testDeps.ctx, tutor)

		require.Nil(t, err)

		ids := make([]string, 0, len(slots))
		for _, s := range slots {
			ids = append(ids, s.ID)
		}

		require.Equal(t, []string{"b", "d", "a", "c"}, ids)
	})

	t.Run("profile error", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.api.EXPECT().GetMyProfile(testDeps.ctx, tutor).Return(nil, errors.New("api error")).Times(1)
		testDeps.api.EXPECT().GetSlotsByTutor(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.manager.List(testDeps.ctx, tutor)
		require.Error(t, err)
	})
}

func TestAvailable(t *testing.T) {
	ctrl, testDeps := newTestDeps(t)
	defer ctrl.Finish()

	student := model.Credentials{Cookie: "c", Role: model.RoleStudent}

	testDeps.api.EXPECT().GetSlotsByTutor(testDeps.ctx, student, "tp1").Return([]model.Slot{
		{ID: "a", IsBooked: true},
		{ID: "b"},
	}, nil).Times(1)

	slots, err := testDeps.manager.Available(testDeps.ctx, student, "tp1")

	require.Nil(t, err)
	require.Equal(t, []model.Slot{{ID: "b"}}, slots)
}

func TestAdd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		input := model.SlotInput{Date: "2026-10-20", StartTime: "09:00", EndTime: "10:00"}

		testDeps.api.EXPECT().GetMyProfile(testDeps.ctx, tutor).Return(profile, nil).Times(1)
		testDeps.api.EXPECT().AddSlots(testDeps.ctx, tutor, "tp1", []model.SlotInput{input}).
			Return([]model.Slot{{ID: "s1", Date: input.Date, StartTime: input.StartTime, EndTime: input.EndTime}}, nil).Times(1)

		created, err := testDeps.manager.Add(testDeps.ctx, tutor, model.SlotInput{Date: " 2026-10-20", StartTime: "09:00 ", EndTime: "10:00"})

		require.Nil(t, err)
		require.Len(t, created, 1)
		require.Equal(t, "s1", created[0].ID)
	})

	t.Run("rejected locally", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.api.EXPECT().GetMyProfile(gomock.Any(), gomock.Any()).Times(0)
		testDeps.api.EXPECT().AddSlots(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		inputs := []model.SlotInput{
			{Date: "", StartTime: "09:00", EndTime: "10:00"},
			{Date: "2026-10-20", StartTime: "", EndTime: "10:00"},
			{Date: "20/10/2026", StartTime: "09:00", EndTime: "10:00"},
			{Date: "2026-10-20", StartTime: "9am", EndTime: "10:00"},
			{Date: "2026-10-20", StartTime: "10:00", EndTime: "10:00"},
			{Date: "2026-10-20", StartTime: "11:00", EndTime: "10:00"},
		}

		for _, input := range inputs {
			_, err := testDeps.manager.Add(testDeps.ctx, tutor, input)
			require.ErrorIs(t, err, slot.ErrInvalidSlot, "%#v", input)
		}
	})
}

func TestDelete(t *testing.T) {
	slots := []model.Slot{{ID: "free"}, {ID: "taken", IsBooked: true}}

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.api.EXPECT().GetMyProfile(testDeps.ctx, tutor).Return(profile, nil).Times(1)
		testDeps.api.EXPECT().GetSlotsByTutor(testDeps.ctx, tutor, "tp1").Return(slots, nil).Times(1)
		testDeps.api.EXPECT().DeleteSlot(testDeps.ctx, tutor, "free").Return(nil).Times(1)

		require.Nil(t, testDeps.manager.Delete(testDeps.ctx, tutor, "free"))
	})

	t.Run("booked slot", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.api.EXPECT().GetMyProfile(testDeps.ctx, tutor).Return(profile, nil).Times(1)
		testDeps.api.EXPECT().GetSlotsByTutor(testDeps.ctx, tutor, "tp1").Return(slots, nil).Times(1)
		testDeps.api.EXPECT().DeleteSlot(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		require.ErrorIs(t, testDeps.manager.Delete(testDeps.ctx, tutor, "taken"), slot.ErrSlotBooked)
	})

	t.Run("not the tutor's slot", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.api.EXPECT().GetMyProfile(testDeps.ctx, tutor).Return(profile, nil).Times(1)
		testDeps.api.EXPECT().GetSlotsByTutor(testDeps.ctx, tutor, "tp1").Return(slots, nil).Times(1)
		testDeps.api.EXPECT().DeleteSlot(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		require.ErrorIs(t, testDeps.manager.Delete(testDeps.ctx, tutor, "other"), slot.ErrSlotNotFound)
	})

	t.Run("remote failure", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.api.EXPECT().GetMyProfile(testDeps.ctx, tutor).Return(profile, nil).Times(1)
		testDeps.api.EXPECT().GetSlotsByTutor(testDeps.ctx, tutor, "tp1").Return(slots, nil).Times(1)
		testDeps.api.EXPECT().DeleteSlot(testDeps.ctx, tutor, "free").Return(errors.New("api error")).Times(1)

		err := testDeps.manager.Delete(testDeps.ctx, tutor, "free")

		require.Error(t, err)
		require.NotErrorIs(t, err, slot.ErrSlotBooked)
	})
}
