package services

import (
	"database/sql"
	"fmt"
	"time"

	"usta_backend/internal/models"
	"usta_backend/internal/repositories"

	"gorm.io/gorm"
)

// fakeTxManager runs the body without a database. The nil tx is fine because
// the fake repositories ignore their db argument, just like the real ones
// only pass it through to gorm.
type fakeTxManager struct{}

func (fakeTxManager) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	return fc(nil)
}

// memDB backs the fake repositories with plain maps.
type memDB struct {
	seq       int
	users     map[string]*models.User
	cvs       map[string]*models.Cv
	orders    map[string]*models.Order
	proposals map[string]*models.Proposal
	jobs      map[string]*models.Job
	history   []models.JobStatusChange
	appeals   map[string]*models.Appeal
	reviews   map[string]*models.Review
}

func newMemDB() *memDB {
	return &memDB{
		users:     make(map[string]*models.User),
		cvs:       make(map[string]*models.Cv),
		orders:    make(map[string]*models.Order),
		proposals: make(map[string]*models.Proposal),
		jobs:      make(map[string]*models.Job),
		appeals:   make(map[string]*models.Appeal),
		reviews:   make(map[string]*models.Review),
	}
}

func (m *memDB) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memDB) addCv(ownerID string) *models.Cv {
	cv := &models.Cv{OwnerID: ownerID, Rating: models.RatingMin}
	cv.ID = m.nextID("cv")
	m.cvs[cv.ID] = cv
	return cv
}

func (m *memDB) addOrder(ownerID string, status models.OrderStatus) *models.Order {
	order := &models.Order{
		OwnerID:     ownerID,
		CategoryID:  "cat-1",
		Description: "fix the sink",
		Price:       1000,
		Status:      status,
	}
	order.ID = m.nextID("order")
	m.orders[order.ID] = order
	return order
}

func (m *memDB) addProposal(ownerID, orderID string, status models.ProposalStatus) *models.Proposal {
	proposal := &models.Proposal{
		OwnerID: ownerID,
		OrderID: orderID,
		Message: "I can do it",
		Price:   900,
		Status:  status,
	}
	proposal.ID = m.nextID("proposal")
	m.proposals[proposal.ID] = proposal
	return proposal
}

func (m *memDB) addJob(orderID, proposalID, assigneeID string, status models.JobStatus) *models.Job {
	job := &models.Job{
		OrderID:                    orderID,
		ProposalID:                 proposalID,
		AssigneeID:                 assigneeID,
		Price:                      900,
		Status:                     status,
		PaymentConfirmedByCustomer: models.PaymentDefault,
		PaymentConfirmedByWorker:   models.PaymentDefault,
	}
	job.ID = m.nextID("job")
	m.jobs[job.ID] = job
	return job
}

// ---------------- job repository ----------------

type fakeJobRepo struct{ m *memDB }

func (r *fakeJobRepo) Create(_ *gorm.DB, job *models.Job) error {
	for _, existing := range r.m.jobs {
		if existing.ProposalID == job.ProposalID {
			return gorm.ErrDuplicatedKey
		}
	}
	if job.ID == "" {
		job.ID = r.m.nextID("job")
	}
	stored := *job
	stored.Order = nil
	r.m.jobs[job.ID] = &stored
	return nil
}

func (r *fakeJobRepo) FindByID(_ *gorm.DB, id string) (*models.Job, error) {
	stored, ok := r.m.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return r.withOrder(stored)
}

func (r *fakeJobRepo) FindByIDForUpdate(db *gorm.DB, id string) (*models.Job, error) {
	return r.FindByID(db, id)
}

func (r *fakeJobRepo) FindByProposal(_ *gorm.DB, proposalID string) (*models.Job, error) {
	for _, stored := range r.m.jobs {
		if stored.ProposalID == proposalID {
			return r.withOrder(stored)
		}
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindAll(_ *gorm.DB, filter repositories.JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job
	for _, stored := range r.m.jobs {
		job, err := r.withOrder(stored)
		if err != nil {
			return nil, 0, err
		}
		if filter.PartyID != "" && !job.IsParty(filter.PartyID) {
			continue
		}
		if filter.OrderID != "" && job.OrderID != filter.OrderID {
			continue
		}
		if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		jobs = append(jobs, *job)
	}
	return jobs, int64(len(jobs)), nil
}

func (r *fakeJobRepo) Update(_ *gorm.DB, job *models.Job) error {
	if _, ok := r.m.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	stored := *job
	stored.Order = nil
	r.m.jobs[job.ID] = &stored
	return nil
}

func (r *fakeJobRepo) AppendStatusChange(_ *gorm.DB, change *models.JobStatusChange) error {
	change.ID = uint(len(r.m.history) + 1)
	if change.ChangedAt.IsZero() {
		change.ChangedAt = time.Now()
	}
	r.m.history = append(r.m.history, *change)
	return nil
}

func (r *fakeJobRepo) StatusHistory(_ *gorm.DB, jobID string) ([]models.JobStatusChange, error) {
	var history []models.JobStatusChange
	for _, change := range r.m.history {
		if change.JobID == jobID {
			history = append(history, change)
		}
	}
	return history, nil
}

func (r *fakeJobRepo) withOrder(stored *models.Job) (*models.Job, error) {
	job := *stored
	order, ok := r.m.orders[job.OrderID]
	if !ok {
		return nil, repositories.ErrOrderNotFound
	}
	orderCopy := *order
	job.Order = &orderCopy
	return &job, nil
}

// ---------------- order repository ----------------

type fakeOrderRepo struct{ m *memDB }

func (r *fakeOrderRepo) Create(_ *gorm.DB, order *models.Order) error {
	if order.ID == "" {
		order.ID = r.m.nextID("order")
	}
	stored := *order
	r.m.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) FindByID(_ *gorm.DB, id string) (*models.Order, error) {
	stored, ok := r.m.orders[id]
	if !ok {
		return nil, repositories.ErrOrderNotFound
	}
	order := *stored
	return &order, nil
}

func (r *fakeOrderRepo) FindAll(_ *gorm.DB, filter repositories.OrderFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	for _, stored := range r.m.orders {
		if filter.OwnerID != "" && stored.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Status != "" && stored.Status != filter.Status {
			continue
		}
		orders = append(orders, *stored)
	}
	return orders, int64(len(orders)), nil
}

func (r *fakeOrderRepo) Update(_ *gorm.DB, order *models.Order) error {
	if _, ok := r.m.orders[order.ID]; !ok {
		return repositories.ErrOrderNotFound
	}
	stored := *order
	r.m.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) Delete(_ *gorm.DB, id string) error {
	delete(r.m.orders, id)
	return nil
}

func (r *fakeOrderRepo) CountCreatedOn(_ *gorm.DB, day time.Time) (int64, error) {
	return int64(len(r.m.orders)), nil
}

// ---------------- proposal repository ----------------

type fakeProposalRepo struct{ m *memDB }

func (r *fakeProposalRepo) Create(_ *gorm.DB, proposal *models.Proposal) error {
	for _, existing := range r.m.proposals {
		if existing.OwnerID == proposal.OwnerID && existing.OrderID == proposal.OrderID {
			return repositories.ErrProposalAlreadyExists
		}
	}
	if proposal.ID == "" {
		proposal.ID = r.m.nextID("proposal")
	}
	stored := *proposal
	r.m.proposals[proposal.ID] = &stored
	return nil
}

func (r *fakeProposalRepo) FindByID(_ *gorm.DB, id string) (*models.Proposal, error) {
	stored, ok := r.m.proposals[id]
	if !ok {
		return nil, repositories.ErrProposalNotFound
	}
	proposal := *stored
	return &proposal, nil
}

func (r *fakeProposalRepo) FindAll(_ *gorm.DB, filter repositories.ProposalFilter) ([]models.Proposal, int64, error) {
	var proposals []models.Proposal
	for _, stored := range r.m.proposals {
		if filter.OwnerID != "" && stored.OwnerID != filter.OwnerID {
			continue
		}
		if filter.OrderID != "" && stored.OrderID != filter.OrderID {
			continue
		}
		if filter.Status != "" && stored.Status != filter.Status {
			continue
		}
		proposals = append(proposals, *stored)
	}
	return proposals, int64(len(proposals)), nil
}

func (r *fakeProposalRepo) Update(_ *gorm.DB, proposal *models.Proposal) error {
	if _, ok := r.m.proposals[proposal.ID]; !ok {
		return repositories.ErrProposalNotFound
	}
	stored := *proposal
	r.m.proposals[proposal.ID] = &stored
	return nil
}

func (r *fakeProposalRepo) Delete(_ *gorm.DB, id string) error {
	delete(r.m.proposals, id)
	return nil
}

func (r *fakeProposalRepo) ExistsForOwnerAndOrder(_ *gorm.DB, ownerID, orderID string) (bool, error) {
	for _, stored := range r.m.proposals {
		if stored.OwnerID == ownerID && stored.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProposalRepo) CountCreatedOn(_ *gorm.DB, day time.Time) (int64, error) {
	return int64(len(r.m.proposals)), nil
}

// ---------------- profile repository ----------------

type fakeProfileRepo struct{ m *memDB }

func (r *fakeProfileRepo) CreateCv(_ *gorm.DB, cv *models.Cv) error {
	for _, existing := range r.m.cvs {
		if existing.OwnerID == cv.OwnerID {
			return repositories.ErrCvAlreadyExists
		}
	}
	if cv.ID == "" {
		cv.ID = r.m.nextID("cv")
	}
	stored := *cv
	r.m.cvs[cv.ID] = &stored
	return nil
}

func (r *fakeProfileRepo) FindCvByID(_ *gorm.DB, id string) (*models.Cv, error) {
	stored, ok := r.m.cvs[id]
	if !ok {
		return nil, repositories.ErrCvNotFound
	}
	cv := *stored
	return &cv, nil
}

func (r *fakeProfileRepo) FindCvByOwner(_ *gorm.DB, ownerID string) (*models.Cv, error) {
	for _, stored := range r.m.cvs {
		if stored.OwnerID == ownerID {
			cv := *stored
			return &cv, nil
		}
	}
	return nil, repositories.ErrCvNotFound
}

func (r *fakeProfileRepo) UpdateCv(_ *gorm.DB, cv *models.Cv) error {
	stored := *cv
	r.m.cvs[cv.ID] = &stored
	return nil
}

func (r *fakeProfileRepo) DeleteCv(_ *gorm.DB, id string) error {
	delete(r.m.cvs, id)
	return nil
}

func (r *fakeProfileRepo) UpdateCvRating(_ *gorm.DB, cvID string, rating int) error {
	stored, ok := r.m.cvs[cvID]
	if !ok {
		return repositories.ErrCvNotFound
	}
	stored.Rating = rating
	return nil
}

func (r *fakeProfileRepo) CountCvReviews(_ *gorm.DB, cvID string) (int64, error) {
	var count int64
	for _, review := range r.m.reviews {
		if review.WhomID == cvID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProfileRepo) CountCvAppeals(_ *gorm.DB, cvID string) (int64, error) {
	var count int64
	for _, appeal := range r.m.appeals {
		if appeal.WhomID == cvID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProfileRepo) CreateBankCard(_ *gorm.DB, card *models.BankCard) error { return nil }
func (r *fakeProfileRepo) FindBankCardByID(_ *gorm.DB, id string) (*models.BankCard, error) {
	return nil, repositories.ErrBankCardNotFound
}
func (r *fakeProfileRepo) FindBankCardsByOwner(_ *gorm.DB, ownerID string) ([]models.BankCard, error) {
	return nil, nil
}
func (r *fakeProfileRepo) UpdateBankCard(_ *gorm.DB, card *models.BankCard) error { return nil }
func (r *fakeProfileRepo) DeleteBankCard(_ *gorm.DB, id string) error             { return nil }
func (r *fakeProfileRepo) CreatePassport(_ *gorm.DB, passport *models.Passport) error {
	return nil
}
func (r *fakeProfileRepo) FindPassportByID(_ *gorm.DB, id string) (*models.Passport, error) {
	return nil, repositories.ErrPassportNotFound
}
func (r *fakeProfileRepo) FindPassportsByOwner(_ *gorm.DB, ownerID string) ([]models.Passport, error) {
	return nil, nil
}
func (r *fakeProfileRepo) UpdatePassport(_ *gorm.DB, passport *models.Passport) error { return nil }
func (r *fakeProfileRepo) DeletePassport(_ *gorm.DB, id string) error                 { return nil }

// ---------------- appeal repository ----------------

type fakeAppealRepo struct{ m *memDB }

func (r *fakeAppealRepo) Create(_ *gorm.DB, appeal *models.Appeal) error {
	if appeal.ID == "" {
		appeal.ID = r.m.nextID("appeal")
	}
	stored := *appeal
	r.m.appeals[appeal.ID] = &stored
	return nil
}

func (r *fakeAppealRepo) FindByID(_ *gorm.DB, id string) (*models.Appeal, error) {
	stored, ok := r.m.appeals[id]
	if !ok {
		return nil, repositories.ErrAppealNotFound
	}
	appeal := *stored
	return &appeal, nil
}

func (r *fakeAppealRepo) FindAll(_ *gorm.DB, filter repositories.AppealFilter) ([]models.Appeal, int64, error) {
	var appeals []models.Appeal
	for _, stored := range r.m.appeals {
		if filter.JobID != "" && stored.JobID != filter.JobID {
			continue
		}
		if filter.To != "" && stored.To != filter.To {
			continue
		}
		if filter.PartyID != "" {
			cv := r.m.cvs[stored.WhomID]
			if stored.OwnerID != filter.PartyID && (cv == nil || cv.OwnerID != filter.PartyID) {
				continue
			}
		}
		appeals = append(appeals, *stored)
	}
	return appeals, int64(len(appeals)), nil
}

// ---------------- review repository ----------------

type fakeReviewRepo struct{ m *memDB }

func (r *fakeReviewRepo) Create(_ *gorm.DB, review *models.Review) error {
	for _, existing := range r.m.reviews {
		if existing.JobID == review.JobID && existing.OwnerID == review.OwnerID {
			return repositories.ErrReviewAlreadyExists
		}
	}
	if review.ID == "" {
		review.ID = r.m.nextID("review")
	}
	stored := *review
	r.m.reviews[review.ID] = &stored
	return nil
}

func (r *fakeReviewRepo) FindByID(_ *gorm.DB, id string) (*models.Review, error) {
	stored, ok := r.m.reviews[id]
	if !ok {
		return nil, repositories.ErrReviewNotFound
	}
	review := *stored
	return &review, nil
}

func (r *fakeReviewRepo) FindByJobAndOwner(_ *gorm.DB, jobID, ownerID string) (*models.Review, error) {
	for _, stored := range r.m.reviews {
		if stored.JobID == jobID && stored.OwnerID == ownerID {
			review := *stored
			return &review, nil
		}
	}
	return nil, repositories.ErrReviewNotFound
}

func (r *fakeReviewRepo) FindAll(_ *gorm.DB, filter repositories.ReviewFilter) ([]models.Review, int64, error) {
	var reviews []models.Review
	for _, stored := range r.m.reviews {
		if filter.JobID != "" && stored.JobID != filter.JobID {
			continue
		}
		if filter.WhomID != "" && stored.WhomID != filter.WhomID {
			continue
		}
		if filter.OwnerID != "" && stored.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Rating != 0 && stored.Rating != filter.Rating {
			continue
		}
		reviews = append(reviews, *stored)
	}
	return reviews, int64(len(reviews)), nil
}

func (r *fakeReviewRepo) AverageRatingForCv(_ *gorm.DB, cvID string) (float64, int64, error) {
	var sum, count int64
	for _, stored := range r.m.reviews {
		if stored.WhomID == cvID {
			sum += int64(stored.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}
