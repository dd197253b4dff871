package services

import (
	"testing"

	"usta_backend/internal/models"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	customerID = "customer-1"
	workerID   = "worker-1"
	outsiderID = "outsider-1"
)

type jobFixture struct {
	m   *memDB
	svc JobService
	job *models.Job
}

func newJobFixture(status models.JobStatus) *jobFixture {
	m := newMemDB()
	order := m.addOrder(customerID, models.OrderStatusClosed)
	proposal := m.addProposal(workerID, order.ID, models.ProposalStatusApproved)
	job := m.addJob(order.ID, proposal.ID, workerID, status)
	svc := NewJobService(nil, fakeTxManager{}, &fakeJobRepo{m})
	return &jobFixture{m: m, svc: svc, job: job}
}

func errCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	return appErr.Code
}

func TestMarkWorkDone(t *testing.T) {
	f := newJobFixture(models.JobStatusInProgress)

	resp, err := f.svc.MarkWorkDone(workerID, f.job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPayment, resp.Status)

	history, err := f.svc.StatusHistory(workerID, false, f.job.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.JobStatusInProgress, history[0].FromStatus)
	assert.Equal(t, models.JobStatusPayment, history[0].ToStatus)
}

func TestMarkWorkDoneByCustomer(t *testing.T) {
	f := newJobFixture(models.JobStatusInProgress)

	resp, err := f.svc.MarkWorkDone(customerID, f.job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPayment, resp.Status)
}

func TestMarkWorkDoneRejectsOutsider(t *testing.T) {
	f := newJobFixture(models.JobStatusInProgress)

	_, err := f.svc.MarkWorkDone(outsiderID, f.job.ID)
	assert.Equal(t, apperrors.CodePermissionDenied, errCode(t, err))
}

func TestMarkWorkDoneRejectsWrongStage(t *testing.T) {
	for _, status := range []models.JobStatus{
		models.JobStatusPayment,
		models.JobStatusWarning,
		models.JobStatusReview,
		models.JobStatusCompleted,
	} {
		f := newJobFixture(status)
		_, err := f.svc.MarkWorkDone(workerID, f.job.ID)
		assert.Equal(t, apperrors.CodeInvalidState, errCode(t, err), "status %s", status)
	}
}

func TestConfirmPaymentRequiresPaymentStage(t *testing.T) {
	f := newJobFixture(models.JobStatusInProgress)

	_, err := f.svc.ConfirmPayment(customerID, f.job.ID)
	assert.Equal(t, apperrors.CodeInvalidState, errCode(t, err))
}

func TestMutualConfirmationAdvancesToReview(t *testing.T) {
	f := newJobFixture(models.JobStatusPayment)

	resp, err := f.svc.ConfirmPayment(customerID, f.job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPayment, resp.Status, "one confirmation is not enough")
	assert.Equal(t, models.PaymentApproved, resp.PaymentConfirmedByCustomer)

	resp, err = f.svc.ConfirmPayment(workerID, f.job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusReview, resp.Status)
	assert.Equal(t, models.PaymentApproved, resp.PaymentConfirmedByWorker)
}

func TestProblemReportMovesToWarning(t *testing.T) {
	f := newJobFixture(models.JobStatusPayment)

	resp, err := f.svc.ReportPaymentProblem(workerID, f.job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusWarning, resp.Status)
	assert.Equal(t, models.PaymentProblem, resp.PaymentConfirmedByWorker)
}

func TestMutualConfirmationWinsOverWarning(t *testing.T) {
	f := newJobFixture(models.JobStatusPayment)

	_, err := f.svc.ReportPaymentProblem(workerID, f.job.ID)
	require.NoError(t, err)

	// The worker reconsiders; once both sides approve the job leaves
	// warning for review.
	_, err = f.svc.ConfirmPayment(customerID, f.job.ID)
	require.NoError(t, err)
	resp, err := f.svc.ConfirmPayment(workerID, f.job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusReview, resp.Status)

	history, err := f.svc.StatusHistory(workerID, false, f.job.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.JobStatusWarning, history[0].ToStatus)
	assert.Equal(t, models.JobStatusReview, history[1].ToStatus)
}

func TestConfirmPaymentRejectsOutsider(t *testing.T) {
	f := newJobFixture(models.JobStatusPayment)

	_, err := f.svc.ConfirmPayment(outsiderID, f.job.ID)
	assert.Equal(t, apperrors.CodePermissionDenied, errCode(t, err))
}

func TestGetJobScoping(t *testing.T) {
	f := newJobFixture(models.JobStatusInProgress)

	_, err := f.svc.GetJob(customerID, false, f.job.ID)
	assert.NoError(t, err)

	_, err = f.svc.GetJob(outsiderID, false, f.job.ID)
	assert.Equal(t, apperrors.CodePermissionDenied, errCode(t, err))

	_, err = f.svc.GetJob(outsiderID, true, f.job.ID)
	assert.NoError(t, err, "admins see every job")
}

func TestGetJobNotFound(t *testing.T) {
	f := newJobFixture(models.JobStatusInProgress)

	_, err := f.svc.GetJob(customerID, false, "missing")
	assert.Equal(t, apperrors.CodeNotFound, errCode(t, err))
}

func TestListJobsScopedToParty(t *testing.T) {
	f := newJobFixture(models.JobStatusInProgress)

	otherOrder := f.m.addOrder("customer-2", models.OrderStatusClosed)
	otherProposal := f.m.addProposal("worker-2", otherOrder.ID, models.ProposalStatusApproved)
	f.m.addJob(otherOrder.ID, otherProposal.ID, "worker-2", models.JobStatusInProgress)

	resp, err := f.svc.ListJobs(workerID, false, &dto.JobListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, f.job.ID, resp.Jobs[0].ID)

	resp, err = f.svc.ListJobs(outsiderID, true, &dto.JobListRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Jobs, 2)
}

// Walks the whole lifecycle through the real services over shared state:
// proposal approval creates the job, payment confirmations and an appeal move
// it through payment and warning, and mutual reviews complete it.
func TestFullLifecycle(t *testing.T) {
	m := newMemDB()
	txm := fakeTxManager{}
	jobRepo := &fakeJobRepo{m}
	profileRepo := &fakeProfileRepo{m}

	proposals := NewProposalService(nil, txm, &fakeProposalRepo{m}, &fakeOrderRepo{m}, jobRepo)
	jobs := NewJobService(nil, txm, jobRepo)
	appeals := NewAppealService(nil, txm, &fakeAppealRepo{m}, jobRepo, profileRepo)
	reviews := NewReviewService(nil, txm, &fakeReviewRepo{m}, jobRepo, profileRepo)

	m.addCv(customerID)
	workerCv := m.addCv(workerID)
	order := m.addOrder(customerID, models.OrderStatusOpen)
	proposal := m.addProposal(workerID, order.ID, models.ProposalStatusWaiting)

	// Approval closes the order and opens the job.
	resolved, err := proposals.UpdateStatus(customerID, proposal.ID, models.ProposalStatusApproved)
	require.NoError(t, err)
	require.NotEmpty(t, resolved.JobID)
	assert.Equal(t, models.OrderStatusClosed, m.orders[order.ID].Status)

	jobID := resolved.JobID

	_, err = jobs.MarkWorkDone(workerID, jobID)
	require.NoError(t, err)

	// The customer disputes, then the parties settle.
	_, err = appeals.FileAppeal(customerID, &dto.FileAppealRequest{
		JobID:   jobID,
		To:      string(models.AppealTypePayment),
		Problem: "transfer never arrived",
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusWarning, m.jobs[jobID].Status)

	_, err = jobs.ConfirmPayment(customerID, jobID)
	require.NoError(t, err)
	resp, err := jobs.ConfirmPayment(workerID, jobID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusReview, resp.Status)

	// Both parties review; the second one completes the job.
	first, err := reviews.SubmitReview(customerID, &dto.SubmitReviewRequest{JobID: jobID, Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusReview, first.JobStatus)

	second, err := reviews.SubmitReview(workerID, &dto.SubmitReviewRequest{JobID: jobID, Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, second.JobStatus)

	assert.Equal(t, 5, m.cvs[workerCv.ID].Rating, "worker received a single 5")

	history, err := jobs.StatusHistory(customerID, false, jobID)
	require.NoError(t, err)
	var statuses []models.JobStatus
	for _, change := range history {
		statuses = append(statuses, change.ToStatus)
	}
	assert.Equal(t, []models.JobStatus{
		models.JobStatusPayment,
		models.JobStatusWarning,
		models.JobStatusReview,
		models.JobStatusCompleted,
	}, statuses)
}
