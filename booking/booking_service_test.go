package booking_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	bk "github.com/hanksha/skillbridge-bff/booking"
	bk_mocks "github.com/hanksha/skillbridge-bff/booking/mocks"
	"github.com/hanksha/skillbridge-bff/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var student = model.Credentials{Cookie: "better-auth.session_token=student", UserID: "s1", Role: model.RoleStudent}

var tutor = model.Credentials{Cookie: "better-auth.session_token=tutor", UserID: "t1", Role: model.RoleTutor}

type testDeps struct {
	api     *bk_mocks.MockBookingAPI
	journal *bk_mocks.MockJournal
	service *bk.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := bk_mocks.NewMockBookingAPI(ctrl)
	journal := bk_mocks.NewMockJournal(ctrl)
	svc := bk.NewService(api, journal, bk.NewBoardStore(time.Minute, "better-auth.session_token"))

	return ctrl, testDeps{
		api: api, journal: journal, service: svc, ctx: context.Background(),
	}
}

func findView(t *testing.T, views []*bk.View, id string) *bk.View {
	t.Helper()

	for _, view := range views {
		if view.ID == id {
			return view
		}
	}

	t.Fatalf("booking %v not in %#v", id, views)
	return nil
}

func TestStudentBookings(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", TutorID: "tutor1", StudentID: "s1", SlotID: "slot1", Status: model.StatusCompleted},
		{ID: "b2", TutorID: "tutor1", StudentID: "s1", SlotID: "slot2", Status: model.StatusConfirmed},
		{ID: "b3", TutorID: "tutor2", StudentID: "s1", SlotID: "slot9", Status: model.StatusCompleted},
	}

	t.Run("decorates bookings with slots and reviews", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.api.EXPECT().GetMyBookings(testDeps.ctx, student).Return(bookings, nil).Times(1)
		testDeps.api.EXPECT().GetSlotsByTutor(testDeps.ctx, student, "tutor1").Return([]model.Slot{
			{ID: "slot1", Date: "2026-10-20", StartTime: "10:00", EndTime: "11:00", IsBooked: true},
			{ID: "slot2", Date: "2026-10-21", StartTime: "10:00", EndTime: "11:00", IsBooked: true},
		}, nil).Times(1)
		testDeps.api.EXPECT().GetSlotsByTutor(testDeps.ctx, student, "tutor2").Return(nil, errors.New("tutor2 down")).Times(1)
		testDeps.api.EXPECT().GetReviewByBooking(testDeps.ctx, student, "b1").Return(&model.Review{ID: "r1", Rating: 5, Comment: "Great!"}, nil).Times(1)
		testDeps.api.EXPECT().GetReviewByBooking(testDeps.ctx, student, "b3").Return(nil, errors.New("review lookup failed")).Times(1)

		views, err := testDeps.service.StudentBookings(testDeps.ctx, student, false)

		require.Nil(t, err)
		require.Len(t, views, 3)
		require.Equal(t, []string{"b1", "b2", "b3"}, []string{views[0].ID, views[1].ID, views[2].ID})

		b1 := findView(t, views, "b1")
		require.NotNil(t, b1.Review)
		require.Equal(t, 5, b1.Review.Rating)
		require.Equal(t, "slot1", b1.Slot.ID)

		b2 := findView(t, views, "b2")
		require.Nil(t, b2.Review)
		require.Equal(t, []bk.Action{bk.ActionAttend, bk.ActionCancel}, b2.Actions)

		b3 := findView(t, views, "b3")
		require.Nil(t, b3.Review)
		require.Nil(t, b3.Slot)
	})

	t.Run("served from the board until refreshed", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		pending := []model.Booking{{ID: "b2", Status: model.StatusPending}}

		testDeps.api.EXPECT().GetMyBookings(testDeps.ctx, student).Return(pending, nil).Times(2)

		_, err := testDeps.service.StudentBookings(testDeps.ctx, student, false)
		require.Nil(t, err)

		_, err = testDeps.service.StudentBookings(testDeps.ctx, student, false)
		require.Nil(t, err)

		_, err = testDeps.service.StudentBookings(testDeps.ctx, student, true)
		require.Nil(t, err)
	})

	t.Run("bookings error", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.api.EXPECT().GetMyBookings(testDeps.ctx, student).Return(nil, errors.New("api error")).Times(1)
		testDeps.api.EXPECT().GetSlotsByTutor(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		views, err := testDeps.service.StudentBookings(testDeps.ctx, student, false)

		require.Error(t, err)
		require.Equal(t, 0, len(views))
	})
}

func loadStudentBoard(t *testing.T, testDeps testDeps, bookings []model.Booking) []*bk.View {
	t.Helper()

	testDeps.api.EXPECT().GetMyBookings(testDeps.ctx, student).Return(bookings, nil).Times(1)
	testDeps.api.EXPECT().GetSlotsByTutor(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Slot{}, nil).AnyTimes()
	testDeps.api.EXPECT().GetReviewByBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	views, err := testDeps.service.StudentBookings(testDeps.ctx, student, false)
	require.Nil(t, err)

	return views
}

func TestUpdateStatus(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", TutorID: "tutor1", Status: model.StatusConfirmed},
		{ID: "b2", TutorID: "tutor1", Status: model.StatusPending},
		{ID: "b3", TutorID: "tutor1", Status: model.StatusCompleted},
	}

	t.Run("success changes exactly one booking", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		before := loadStudentBoard(t, testDeps, bookings)

		testDeps.api.EXPECT().UpdateBookingStatus(testDeps.ctx, student, "b1", model.StatusAttended).Return(nil).Times(1)
		testDeps.journal.EXPECT().Record(testDeps.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, activity bk.Activity) error {
			require.Equal(t, "b1", activity.BookingID)
			require.Equal(t, "CONFIRMED", activity.From)
			require.Equal(t, "ATTENDED", activity.To)
			require.Equal(t, "s1", activity.ActorID)
			return nil
		}).Times(1)

		updated, err := testDeps.service.UpdateStatus(testDeps.ctx, student, "b1", model.StatusAttended)

		require.Nil(t, err)
		require.Equal(t, model.StatusAttended, updated.Status)
		require.Equal(t, []bk.Action{}, updated.Actions)

		after, err := testDeps.service.StudentBookings(testDeps.ctx, student, false)
		require.Nil(t, err)
		require.Len(t, after, 3)

		require.NotSame(t, before[0], after[0])
		require.Equal(t, model.StatusConfirmed, before[0].Status)
		require.Same(t, before[1], after[1])
		require.Same(t, before[2], after[2])
	})

	t.Run("remote failure leaves board untouched", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		before := loadStudentBoard(t, testDeps, bookings)

		testDeps.api.EXPECT().UpdateBookingStatus(testDeps.ctx, student, "b2", model.StatusCancelled).Return(errors.New("api error")).Times(1)
		testDeps.journal.EXPECT().Record(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.UpdateStatus(testDeps.ctx, student, "b2", model.StatusCancelled)

		require.Error(t, err)

		after, err := testDeps.service.StudentBookings(testDeps.ctx, student, false)
		require.Nil(t, err)

		for i := range before {
			require.Same(t, before[i], after[i])
		}
	})

	t.Run("invalid transition fails without a remote call", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		loadStudentBoard(t, testDeps, bookings)

		testDeps.api.EXPECT().UpdateBookingStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.UpdateStatus(testDeps.ctx, student, "b3", model.StatusCancelled)
		require.ErrorIs(t, err, bk.ErrInvalidTransition)

		_, err = testDeps.service.UpdateStatus(testDeps.ctx, student, "b1", model.StatusRescheduled)
		require.ErrorIs(t, err, bk.ErrInvalidTransition)
	})

	t.Run("unknown booking", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		loadStudentBoard(t, testDeps, bookings)

		_, err := testDeps.service.UpdateStatus(testDeps.ctx, student, "nope", model.StatusCancelled)
		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})

	t.Run("journal failure does not fail the update", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		loadStudentBoard(t, testDeps, bookings)

		testDeps.api.EXPECT().UpdateBookingStatus(testDeps.ctx, student, "b2", model.StatusCancelled).Return(nil).Times(1)
		testDeps.journal.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(1)

		updated, err := testDeps.service.UpdateStatus(testDeps.ctx, student, "b2", model.StatusCancelled)

		require.Nil(t, err)
		require.Equal(t, model.StatusCancelled, updated.Status)
	})
}

func TestDuplicateActionInFlight(t *testing.T) {
	ctrl, testDeps := newTestDeps(t)
	defer ctrl.Finish()

	loadStudentBoard(t, testDeps, []model.Booking{{ID: "b1", TutorID: "tutor1", Status: model.StatusConfirmed}})

	started := make(chan struct{})
	release := make(chan struct{})

	testDeps.api.EXPECT().UpdateBookingStatus(gomock.Any(), student, "b1", model.StatusAttended).DoAndReturn(
		func(context.Context, model.Credentials, string, model.BookingStatus) error {
			close(started)
			<-release
			return nil
		}).Times(1)
	testDeps.journal.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	done := make(chan error, 1)

	go func() {
		_, err := testDeps.service.UpdateStatus(testDeps.ctx, student, "b1", model.StatusAttended)
		done <- err
	}()

	<-started

	_, err := testDeps.service.UpdateStatus(testDeps.ctx, student, "b1", model.StatusAttended)
	require.ErrorIs(t, err, bk.ErrActionInFlight)

	close(release)
	require.Nil(t, <-done)
}

func TestSubmitReview(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", TutorID: "tutor1", StudentID: "s1", Status: model.StatusCompleted},
		{ID: "b2", TutorID: "tutor1", StudentID: "s1", Status: model.StatusConfirmed},
	}

	t.Run("success attaches a temporary review", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		loadStudentBoard(t, testDeps, bookings)

		expected := model.ReviewRequest{Rating: 4, Comment: "Very clear", BookingID: "b1", TutorID: "tutor1", StudentID: "s1"}
		testDeps.api.EXPECT().CreateReview(testDeps.ctx, student, expected).Return(model.Review{ID: "r9", Rating: 4}, nil).Times(1)

		updated, err := testDeps.service.SubmitReview(testDeps.ctx, student, "b1", 4, "  Very clear ")

		require.Nil(t, err)
		require.NotNil(t, updated.Review)
		require.Equal(t, 4, updated.Review.Rating)
		require.True(t, strings.HasPrefix(updated.Review.ID, "temp-"))

		_, err = testDeps.service.SubmitReview(testDeps.ctx, student, "b1", 5, "again")
		require.ErrorIs(t, err, bk.ErrAlreadyReviewed)
	})

	t.Run("rejected locally", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		loadStudentBoard(t, testDeps, bookings)

		testDeps.api.EXPECT().CreateReview(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.SubmitReview(testDeps.ctx, student, "b1", 0, "fine")
		require.ErrorIs(t, err, bk.ErrInvalidReview)

		_, err = testDeps.service.SubmitReview(testDeps.ctx, student, "b1", 3, "   ")
		require.ErrorIs(t, err, bk.ErrInvalidReview)

		_, err = testDeps.service.SubmitReview(testDeps.ctx, student, "b2", 3, "fine")
		require.ErrorIs(t, err, bk.ErrInvalidReview)
	})

	t.Run("remote failure", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		loadStudentBoard(t, testDeps, bookings)

		testDeps.api.EXPECT().CreateReview(gomock.Any(), student, gomock.Any()).Return(model.Review{}, errors.New("api error")).Times(1)

		_, err := testDeps.service.SubmitReview(testDeps.ctx, student, "b1", 3, "fine")
		require.Error(t, err)

		views, err := testDeps.service.StudentBookings(testDeps.ctx, student, false)
		require.Nil(t, err)
		require.Nil(t, findView(t, views, "b1").Review)
	})
}

func TestBookSlot(t *testing.T) {
	slots := []model.Slot{
		{ID: "slot1", Date: "2026-10-20", StartTime: "09:30", EndTime: "10:30"},
		{ID: "slot2", Date: "2026-10-20", StartTime: "11:00", EndTime: "12:00", IsBooked: true},
	}

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.api.EXPECT().GetSlotsByTutor(testDeps.ctx, student, "tp1").Return(slots, nil).Times(1)
		testDeps.api.EXPECT().CreateBooking(testDeps.ctx, student, model.BookingRequest{
			TutorProfileID: "tp1",
			DateTime:       "2026-10-20T09:30:00Z",
			Status:         model.StatusConfirmed,
			SlotID:         "slot1",
		}).Return(model.Booking{ID: "b9", SlotID: "slot1", Status: model.StatusConfirmed}, nil).Times(1)

		view, err := testDeps.service.BookSlot(testDeps.ctx, student, "tp1", "slot1")

		require.Nil(t, err)
		require.Equal(t, "b9", view.ID)
		require.True(t, view.Slot.IsBooked)
		require.Equal(t, []bk.Action{bk.ActionAttend, bk.ActionCancel}, view.Actions)
	})

	t.Run("booked slot", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.api.EXPECT().GetSlotsByTutor(testDeps.ctx, student, "tp1").Return(slots, nil).Times(1)
		testDeps.api.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.BookSlot(testDeps.ctx, student, "tp1", "slot2")
		require.ErrorIs(t, err, bk.ErrSlotUnavailable)

		testDeps.api.EXPECT().GetSlotsByTutor(testDeps.ctx, student, "tp1").Return(slots, nil).Times(1)

		_, err = testDeps.service.BookSlot(testDeps.ctx, student, "tp1", "missing")
		require.ErrorIs(t, err, bk.ErrSlotUnavailable)
	})
}

func TestTutorActions(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", StudentID: "s1", Status: model.StatusAttended, SlotInfo: &model.Slot{ID: "slot1", Date: "2026-10-20"}},
		{ID: "b2", StudentID: "s2", Status: model.StatusConfirmed},
	}

	loadTutorBoard := func(t *testing.T, testDeps testDeps) []*bk.View {
		t.Helper()
		testDeps.api.EXPECT().GetTutorBookings(testDeps.ctx, tutor).Return(bookings, nil).Times(1)

		views, err := testDeps.service.TutorBookings(testDeps.ctx, tutor, false)
		require.Nil(t, err)

		return views
	}

	t.Run("offered actions follow status", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		views := loadTutorBoard(t, testDeps)

		require.Equal(t, []bk.Action{bk.ActionComplete}, views[0].Actions)
		require.Equal(t, "slot1", views[0].Slot.ID)
		require.Equal(t, []bk.Action{bk.ActionReschedule}, views[1].Actions)
	})

	t.Run("complete", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		loadTutorBoard(t, testDeps)

		testDeps.api.EXPECT().CompleteBooking(testDeps.ctx, tutor, "b1").Return(nil).Times(1)
		testDeps.journal.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		updated, err := testDeps.service.Complete(testDeps.ctx, tutor, "b1")

		require.Nil(t, err)
		require.Equal(t, model.StatusCompleted, updated.Status)
	})

	t.Run("reschedule", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		loadTutorBoard(t, testDeps)

		testDeps.api.EXPECT().UpdateBookingStatus(testDeps.ctx, tutor, "b2", model.StatusRescheduled).Return(nil).Times(1)
		testDeps.journal.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		updated, err := testDeps.service.Reschedule(testDeps.ctx, tutor, "b2")

		require.Nil(t, err)
		require.Equal(t, model.StatusRescheduled, updated.Status)
		require.NotContains(t, updated.Actions, bk.ActionReschedule)

		_, err = testDeps.service.Reschedule(testDeps.ctx, tutor, "b2")
		require.ErrorIs(t, err, bk.ErrInvalidTransition)
	})

	t.Run("wrong state", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		loadTutorBoard(t, testDeps)

		testDeps.api.EXPECT().CompleteBooking(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		testDeps.api.EXPECT().UpdateBookingStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.Complete(testDeps.ctx, tutor, "b2")
		require.ErrorIs(t, err, bk.ErrInvalidTransition)

		_, err = testDeps.service.Reschedule(testDeps.ctx, tutor, "b1")
		require.ErrorIs(t, err, bk.ErrInvalidTransition)
	})

	t.Run("remote failure", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		loadTutorBoard(t, testDeps)

		testDeps.api.EXPECT().CompleteBooking(testDeps.ctx, tutor, "b1").Return(errors.New("api error")).Times(1)
		testDeps.journal.EXPECT().Record(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.Complete(testDeps.ctx, tutor, "b1")
		require.Error(t, err)

		views, err := testDeps.service.TutorBookings(testDeps.ctx, tutor, false)
		require.Nil(t, err)
		require.Equal(t, model.StatusAttended, views[0].Status)
	})
}
