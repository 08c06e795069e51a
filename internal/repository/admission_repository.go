package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-admission-api/internal/models"
)

const admissionColumns = `id, temporary_id, status, first_name_en, last_name_en, first_name_np, last_name_np,
    dob_ad, dob_bs, gender, address, phone,
    guardian_name, guardian_phone, father_name, father_phone, mother_name, mother_phone,
    applying_for_class, academic_year_id,
    inquiry_date, application_date, application_fee_paid, application_fee_amount, documents_verified,
    test_date, test_score, test_max_score, test_remarks,
    interview_date, interviewer_name, interview_feedback, interview_score,
    admission_date, offer_letter_url, enrollment_date, enrolled_student_id,
    rejection_date, rejection_reason, withdrawal_date, withdrawal_reason,
    created_at, updated_at`

// AdmissionRepository manages persistence for admission records.
type AdmissionRepository struct {
	db *sqlx.DB
}

// NewAdmissionRepository constructs an AdmissionRepository.
func NewAdmissionRepository(db *sqlx.DB) *AdmissionRepository {
	return &AdmissionRepository{db: db}
}

// Create inserts a new admission record.
func (r *AdmissionRepository) Create(ctx context.Context, admission *models.Admission) error {
	if admission.ID == "" {
		admission.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if admission.CreatedAt.IsZero() {
		admission.CreatedAt = now
	}
	admission.UpdatedAt = now
	const query = `INSERT INTO admissions (id, temporary_id, status, first_name_en, last_name_en, first_name_np, last_name_np,
        dob_ad, dob_bs, gender, address, phone,
        guardian_name, guardian_phone, father_name, father_phone, mother_name, mother_phone,
        applying_for_class, academic_year_id,
        inquiry_date, application_date, application_fee_paid, application_fee_amount, documents_verified,
        test_date, test_score, test_max_score, test_remarks,
        interview_date, interviewer_name, interview_feedback, interview_score,
        admission_date, offer_letter_url, enrollment_date, enrolled_student_id,
        rejection_date, rejection_reason, withdrawal_date, withdrawal_reason,
        created_at, updated_at)
        VALUES (:id, :temporary_id, :status, :first_name_en, :last_name_en, :first_name_np, :last_name_np,
        :dob_ad, :dob_bs, :gender, :address, :phone,
        :guardian_name, :guardian_phone, :father_name, :father_phone, :mother_name, :mother_phone,
        :applying_for_class, :academic_year_id,
        :inquiry_date, :application_date, :application_fee_paid, :application_fee_amount, :documents_verified,
        :test_date, :test_score, :test_max_score, :test_remarks,
        :interview_date, :interviewer_name, :interview_feedback, :interview_score,
        :admission_date, :offer_letter_url, :enrollment_date, :enrolled_student_id,
        :rejection_date, :rejection_reason, :withdrawal_date, :withdrawal_reason,
        :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, admission); err != nil {
		return fmt.Errorf("create admission: %w", err)
	}
	return nil
}

// FindByID fetches an admission by ID.
func (r *AdmissionRepository) FindByID(ctx context.Context, id string) (*models.Admission, error) {
	query := fmt.Sprintf("SELECT %s FROM admissions WHERE id = $1", admissionColumns)
	var admission models.Admission
	if err := r.db.GetContext(ctx, &admission, query, id); err != nil {
		return nil, err
	}
	return &admission, nil
}

type admissionUpdate struct {
	models.Admission
	ExpectedStatus models.AdmissionStatus `db:"expected_status"`
}

// UpdateWithStatus persists the full admission snapshot, conditional on the
// stored row still carrying the expected status. This is the single-aggregate
// compare-and-swap the workflow relies on: a concurrent transition that moved
// the status first makes this write match zero rows, reported as sql.ErrNoRows.
func (r *AdmissionRepository) UpdateWithStatus(ctx context.Context, admission *models.Admission, expected models.AdmissionStatus) error {
	admission.UpdatedAt = time.Now().UTC()
	const query = `UPDATE admissions SET status = :status,
        first_name_en = :first_name_en, last_name_en = :last_name_en,
        first_name_np = :first_name_np, last_name_np = :last_name_np,
        dob_ad = :dob_ad, dob_bs = :dob_bs, gender = :gender, address = :address, phone = :phone,
        guardian_name = :guardian_name, guardian_phone = :guardian_phone,
        father_name = :father_name, father_phone = :father_phone,
        mother_name = :mother_name, mother_phone = :mother_phone,
        application_date = :application_date, application_fee_paid = :application_fee_paid,
        application_fee_amount = :application_fee_amount, documents_verified = :documents_verified,
        test_date = :test_date, test_score = :test_score, test_max_score = :test_max_score, test_remarks = :test_remarks,
        interview_date = :interview_date, interviewer_name = :interviewer_name,
        interview_feedback = :interview_feedback, interview_score = :interview_score,
        admission_date = :admission_date, offer_letter_url = :offer_letter_url,
        enrollment_date = :enrollment_date, enrolled_student_id = :enrolled_student_id,
        rejection_date = :rejection_date, rejection_reason = :rejection_reason,
        withdrawal_date = :withdrawal_date, withdrawal_reason = :withdrawal_reason,
        updated_at = :updated_at
        WHERE id = :id AND status = :expected_status`
	res, err := r.db.NamedExecContext(ctx, query, admissionUpdate{Admission: *admission, ExpectedStatus: expected})
	if err != nil {
		return fmt.Errorf("update admission: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update admission rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// List returns admissions matching the provided filters.
func (r *AdmissionRepository) List(ctx context.Context, filter models.AdmissionFilter) ([]models.Admission, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.ApplyingForClass != nil {
		conditions = append(conditions, fmt.Sprintf("applying_for_class = $%d", len(args)+1))
		args = append(args, *filter.ApplyingForClass)
	}
	if filter.AcademicYearID != "" {
		conditions = append(conditions, fmt.Sprintf("academic_year_id = $%d", len(args)+1))
		args = append(args, filter.AcademicYearID)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(first_name_en) LIKE $%d OR LOWER(last_name_en) LIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	where := strings.Join(conditions, " AND ")

	sortBy := filter.SortBy
	allowedSorts := map[string]string{
		"inquiry_date":  "inquiry_date",
		"first_name_en": "first_name_en",
		"last_name_en":  "last_name_en",
		"status":        "status",
		"created_at":    "created_at",
	}
	column, ok := allowedSorts[sortBy]
	if !ok {
		column = "created_at"
	}
	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s FROM admissions WHERE %s ORDER BY %s %s LIMIT %d OFFSET %d",
		admissionColumns, where, column, order, size, offset)

	var admissions []models.Admission
	if err := r.db.SelectContext(ctx, &admissions, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list admissions: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM admissions WHERE %s", where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count admissions: %w", err)
	}
	return admissions, total, nil
}

// CountByStatus groups admissions by pipeline status.
func (r *AdmissionRepository) CountByStatus(ctx context.Context, filter models.StatisticsFilter) ([]models.StatusCount, error) {
	where, args := statisticsWhere(filter)
	query := fmt.Sprintf("SELECT status, COUNT(*) AS count FROM admissions WHERE %s GROUP BY status", where)
	var counts []models.StatusCount
	if err := r.db.SelectContext(ctx, &counts, query, args...); err != nil {
		return nil, fmt.Errorf("count admissions by status: %w", err)
	}
	return counts, nil
}

// CountByClass groups admissions by the class applied for.
func (r *AdmissionRepository) CountByClass(ctx context.Context, filter models.StatisticsFilter) ([]models.ClassCount, error) {
	where, args := statisticsWhere(filter)
	query := fmt.Sprintf("SELECT applying_for_class, COUNT(*) AS count FROM admissions WHERE %s GROUP BY applying_for_class", where)
	var counts []models.ClassCount
	if err := r.db.SelectContext(ctx, &counts, query, args...); err != nil {
		return nil, fmt.Errorf("count admissions by class: %w", err)
	}
	return counts, nil
}

func statisticsWhere(filter models.StatisticsFilter) (string, []interface{}) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	if filter.AcademicYearID != "" {
		conditions = append(conditions, fmt.Sprintf("academic_year_id = $%d", len(args)+1))
		args = append(args, filter.AcademicYearID)
	}
	if filter.ApplyingForClass != nil {
		conditions = append(conditions, fmt.Sprintf("applying_for_class = $%d", len(args)+1))
		args = append(args, *filter.ApplyingForClass)
	}
	return strings.Join(conditions, " AND "), args
}
