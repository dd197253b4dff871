package services

import (
	"testing"

	"usta_backend/internal/models"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewFixture struct {
	m          *memDB
	svc        ReviewService
	job        *models.Job
	customerCv *models.Cv
	workerCv   *models.Cv
}

func newReviewFixture(status models.JobStatus) *reviewFixture {
	m := newMemDB()
	customerCv := m.addCv(customerID)
	workerCv := m.addCv(workerID)
	order := m.addOrder(customerID, models.OrderStatusClosed)
	proposal := m.addProposal(workerID, order.ID, models.ProposalStatusApproved)
	job := m.addJob(order.ID, proposal.ID, workerID, status)
	svc := NewReviewService(nil, fakeTxManager{}, &fakeReviewRepo{m}, &fakeJobRepo{m}, &fakeProfileRepo{m})
	return &reviewFixture{m: m, svc: svc, job: job, customerCv: customerCv, workerCv: workerCv}
}

func TestSubmitReviewKeepsJobInReview(t *testing.T) {
	f := newReviewFixture(models.JobStatusReview)

	resp, err := f.svc.SubmitReview(customerID, &dto.SubmitReviewRequest{JobID: f.job.ID, Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusReview, resp.JobStatus, "one review is not enough")
	assert.Equal(t, f.workerCv.ID, resp.WhomID, "the customer reviews the worker")
	assert.True(t, f.m.jobs[f.job.ID].ReviewWrittenByCustomer)
	assert.False(t, f.m.jobs[f.job.ID].ReviewWrittenByWorker)
}

func TestSecondReviewCompletesJob(t *testing.T) {
	f := newReviewFixture(models.JobStatusReview)

	_, err := f.svc.SubmitReview(customerID, &dto.SubmitReviewRequest{JobID: f.job.ID, Rating: 4})
	require.NoError(t, err)

	resp, err := f.svc.SubmitReview(workerID, &dto.SubmitReviewRequest{JobID: f.job.ID, Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, resp.JobStatus)
	assert.Equal(t, f.customerCv.ID, resp.WhomID, "the worker reviews the customer")
	assert.Equal(t, models.JobStatusCompleted, f.m.jobs[f.job.ID].Status)
}

func TestDuplicateReviewConflicts(t *testing.T) {
	f := newReviewFixture(models.JobStatusReview)

	_, err := f.svc.SubmitReview(customerID, &dto.SubmitReviewRequest{JobID: f.job.ID, Rating: 4})
	require.NoError(t, err)

	_, err = f.svc.SubmitReview(customerID, &dto.SubmitReviewRequest{JobID: f.job.ID, Rating: 2})
	assert.Equal(t, apperrors.CodeConflict, errCode(t, err))
}

func TestReviewRejectedOutsideReviewStage(t *testing.T) {
	for _, status := range []models.JobStatus{
		models.JobStatusInProgress,
		models.JobStatusPayment,
		models.JobStatusWarning,
		models.JobStatusCompleted,
	} {
		f := newReviewFixture(status)
		_, err := f.svc.SubmitReview(customerID, &dto.SubmitReviewRequest{JobID: f.job.ID, Rating: 3})
		assert.Equal(t, apperrors.CodeInvalidState, errCode(t, err), "status %s", status)
	}
}

func TestReviewRejectsOutsider(t *testing.T) {
	f := newReviewFixture(models.JobStatusReview)

	_, err := f.svc.SubmitReview(outsiderID, &dto.SubmitReviewRequest{JobID: f.job.ID, Rating: 3})
	assert.Equal(t, apperrors.CodePermissionDenied, errCode(t, err))
}

func TestReviewWithoutCounterpartyCv(t *testing.T) {
	f := newReviewFixture(models.JobStatusReview)
	delete(f.m.cvs, f.workerCv.ID)

	_, err := f.svc.SubmitReview(customerID, &dto.SubmitReviewRequest{JobID: f.job.ID, Rating: 3})
	assert.Equal(t, apperrors.CodeValidationFailed, errCode(t, err))
}

func TestRatingSnapsToNearestLevel(t *testing.T) {
	f := newReviewFixture(models.JobStatusReview)

	// Two earlier reviews for the worker from other jobs.
	otherOrder := f.m.addOrder("customer-2", models.OrderStatusClosed)
	otherProposal := f.m.addProposal(workerID, otherOrder.ID, models.ProposalStatusApproved)
	f.m.addJob(otherOrder.ID, otherProposal.ID, workerID, models.JobStatusCompleted)

	seed := func(jobID string, owner string, rating int) {
		review := &models.Review{JobID: jobID, OwnerID: owner, WhomID: f.workerCv.ID, Rating: rating}
		review.ID = f.m.nextID("review")
		f.m.reviews[review.ID] = review
	}
	seed("seed-job-1", "customer-2", 2)
	seed("seed-job-2", "customer-3", 3)

	// 2, 3 and the new 5 average to 3.33 and snap down to 3.
	_, err := f.svc.SubmitReview(customerID, &dto.SubmitReviewRequest{JobID: f.job.ID, Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, 3, f.m.cvs[f.workerCv.ID].Rating)
}

func TestRatingMidpointRoundsUp(t *testing.T) {
	f := newReviewFixture(models.JobStatusReview)

	review := &models.Review{JobID: "seed-job", OwnerID: "customer-2", WhomID: f.workerCv.ID, Rating: 4}
	review.ID = f.m.nextID("review")
	f.m.reviews[review.ID] = review

	// 4 and 5 average to 4.5, which rounds up to 5.
	_, err := f.svc.SubmitReview(customerID, &dto.SubmitReviewRequest{JobID: f.job.ID, Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, f.m.cvs[f.workerCv.ID].Rating)
}

func TestRatingSummary(t *testing.T) {
	f := newReviewFixture(models.JobStatusReview)

	_, err := f.svc.SubmitReview(customerID, &dto.SubmitReviewRequest{JobID: f.job.ID, Rating: 4})
	require.NoError(t, err)

	summary, err := f.svc.RatingSummary(f.workerCv.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Rating)
	assert.Equal(t, int64(1), summary.ReviewCount)
	assert.Equal(t, int64(0), summary.AppealCount)
}
