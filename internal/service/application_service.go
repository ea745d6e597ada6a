package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"voyago/internal/config"
	"voyago/internal/domain"
	"voyago/internal/form"
	"voyago/internal/port"
	"voyago/internal/wizard"
)

// FileUpload pairs one selected file with the form field it belongs to.
type FileUpload struct {
	FieldName string
	File      multipart.File
	Header    *multipart.FileHeader
}

// SubmitApplicationInput is the DTO for a country-form submission: the
// flattened form values plus every file the user attached.
type SubmitApplicationInput struct {
	UserID    uuid.UUID
	CountryID uuid.UUID
	Values    map[string]string
	Files     []FileUpload
}

// SubmitWizardInput is the DTO for a wizard submission against a visa type.
type SubmitWizardInput struct {
	UserID     uuid.UUID
	VisaTypeID uuid.UUID
	Payload    json.RawMessage
	Files      []FileUpload
}

// SubmissionResult reports what the assembler actually persisted. Uploaded
// may be smaller than the number of submitted files when individual uploads
// failed; the application itself still exists.
type SubmissionResult struct {
	Application *domain.VisaApplication `json:"application"`
	Uploaded    int                     `json:"uploaded"`
	Failed      []string                `json:"failed,omitempty"`
}

// ApplicationService defines the visa application contract.
type ApplicationService interface {
	Submit(ctx context.Context, input SubmitApplicationInput) (*SubmissionResult, error)
	SubmitWizard(ctx context.Context, input SubmitWizardInput) (*SubmissionResult, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VisaApplication, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.VisaApplication, int, error)
	ListFiles(ctx context.Context, userID, applicationID uuid.UUID) ([]domain.ApplicationFile, error)
	GetFileURL(ctx context.Context, userID, applicationID uuid.UUID, fileID uuid.UUID) (string, error)
}

type applicationService struct {
	appRepo     port.ApplicationRepository
	fileRepo    port.ApplicationFileRepository
	reqRepo     port.VisaRequirementRepository
	countryRepo port.CountryRepository
	typeRepo    port.VisaTypeRepository
	userRepo    port.UserRepository
	storage     port.ObjectStorage
	email       port.EmailSender
	s3cfg       *config.S3Config
	uploadCfg   *config.UploadConfig
}

// NewApplicationService creates a new ApplicationService implementation.
func NewApplicationService(
	appRepo port.ApplicationRepository,
	fileRepo port.ApplicationFileRepository,
	reqRepo port.VisaRequirementRepository,
	countryRepo port.CountryRepository,
	typeRepo port.VisaTypeRepository,
	userRepo port.UserRepository,
	storage port.ObjectStorage,
	email port.EmailSender,
	s3cfg *config.S3Config,
	uploadCfg *config.UploadConfig,
) ApplicationService {
	return &applicationService{
		appRepo:     appRepo,
		fileRepo:    fileRepo,
		reqRepo:     reqRepo,
		countryRepo: countryRepo,
		typeRepo:    typeRepo,
		userRepo:    userRepo,
		storage:     storage,
		email:       email,
		s3cfg:       s3cfg,
		uploadCfg:   uploadCfg,
	}
}

// Submit runs the country-form submission pipeline: validate the values
// against the country's form schema, create the application row, then upload
// the attached files one by one. Validation or insert failures abort before
// any network upload; a failed upload only loses that one file.
func (s *applicationService) Submit(ctx context.Context, input SubmitApplicationInput) (*SubmissionResult, error) {
	country, err := s.countryRepo.GetByID(ctx, input.CountryID)
	if err != nil {
		return nil, err
	}

	reqs, err := s.reqRepo.ListByCountry(ctx, country.ID)
	if err != nil {
		return nil, fmt.Errorf("applicationService.Submit: %w", err)
	}
	descriptors := form.Descriptors(reqs)

	state, err := s.buildState(input.Values, input.Files)
	if err != nil {
		return nil, err
	}
	if verr := form.Validate(descriptors, state); verr != nil {
		return nil, verr
	}

	data, err := json.Marshal(state.Flatten())
	if err != nil {
		return nil, fmt.Errorf("applicationService.Submit: encoding application data: %w", err)
	}

	countryID := country.ID
	app := &domain.VisaApplication{
		UserID:          input.UserID,
		CountryID:       &countryID,
		Status:          domain.ApplicationStatusPending,
		ApplicationData: data,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		log.Printf("applicationService.Submit: creating application failed: %v", err)
		return nil, domain.ErrSubmissionFailed
	}

	result := &SubmissionResult{Application: app}
	s.uploadFiles(ctx, input.UserID, app.ID, input.Files, result)

	s.sendReceivedEmail(ctx, input.UserID, country.Name, app.ID)

	return result, nil
}

// wizardPayload is the submitted shape of a completed wizard flow.
type wizardPayload struct {
	Travelers  []wizard.Traveler `json:"travelers"`
	TravelDate string            `json:"travel_date"`
}

// SubmitWizard persists a completed wizard payload against a visa type. The
// client walks the steps; here the whole flow is rebuilt and re-checked
// against the visa type before the same insert-then-upload pipeline.
func (s *applicationService) SubmitWizard(ctx context.Context, input SubmitWizardInput) (*SubmissionResult, error) {
	vt, err := s.typeRepo.GetByID(ctx, input.VisaTypeID)
	if err != nil {
		return nil, err
	}

	if err := s.revalidateWizard(vt, input); err != nil {
		return nil, err
	}
	for _, f := range input.Files {
		if err := s.checkFile(f.Header); err != nil {
			return nil, err
		}
	}

	typeID := vt.ID
	app := &domain.VisaApplication{
		UserID:          input.UserID,
		VisaTypeID:      &typeID,
		Status:          domain.ApplicationStatusPending,
		ApplicationData: input.Payload,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		log.Printf("applicationService.SubmitWizard: creating application failed: %v", err)
		return nil, domain.ErrSubmissionFailed
	}

	result := &SubmissionResult{Application: app}
	s.uploadFiles(ctx, input.UserID, app.ID, input.Files, result)

	s.sendReceivedEmail(ctx, input.UserID, vt.Name, app.ID)

	return result, nil
}

// revalidateWizard rebuilds the wizard flow from the submitted payload and
// runs every step's checks again server-side, so a tampered client cannot
// submit an incomplete flow.
func (s *applicationService) revalidateWizard(vt *domain.VisaType, input SubmitWizardInput) error {
	var payload wizardPayload
	if err := json.Unmarshal(input.Payload, &payload); err != nil {
		return &form.ValidationError{Fields: []form.FieldError{
			{Field: "application_data", Reason: "payload is not valid JSON"},
		}}
	}

	w := wizard.New(vt.Fee, vt.ProcessingDays)
	if err := w.SetTravelerCount(len(payload.Travelers)); err != nil {
		return &form.ValidationError{Fields: []form.FieldError{
			{Field: "travelers", Reason: "at least one traveler is required"},
		}}
	}
	for i, t := range payload.Travelers {
		// Index and role follow position, whatever the payload claims.
		t.Index = i
		t.Role = wizard.RoleAdditional
		if i == 0 {
			t.Role = wizard.RoleMain
		}
		if !wizard.ValidProfessions[t.Profession] {
			return &form.ValidationError{Fields: []form.FieldError{
				{Field: fmt.Sprintf("travelers[%d].profession", i), Reason: "unknown profession"},
			}}
		}
		// An unanswered sponsorship falls back to the wizard defaults; an
		// out-of-enum answer is rejected outright.
		if t.Sponsorship == "" {
			t.Sponsorship = wizard.SponsorshipNo
			if t.Role == wizard.RoleAdditional {
				t.Sponsorship = wizard.SponsorshipMainSponsoring
			}
		} else if !wizard.ValidSponsorships[t.Sponsorship] {
			return &form.ValidationError{Fields: []form.FieldError{
				{Field: fmt.Sprintf("travelers[%d].is_sponsoring", i), Reason: "unknown sponsorship answer"},
			}}
		}
		w.Travelers[i] = t
	}

	date, err := time.Parse("2006-01-02", payload.TravelDate)
	if err != nil {
		return &form.ValidationError{Fields: []form.FieldError{
			{Field: "travel_date", Reason: "must be formatted as YYYY-MM-DD"},
		}}
	}
	if err := w.SetTravelDate(time.Now(), date); err != nil {
		return domain.ErrInvalidTravelDate
	}

	for _, f := range input.Files {
		idx, key, ok := splitUploadField(f.FieldName)
		if !ok {
			continue
		}
		if err := w.RecordUpload(idx, key, f.Header.Filename); err != nil {
			return &form.ValidationError{Fields: []form.FieldError{
				{Field: f.FieldName, Reason: "no traveler for this document"},
			}}
		}
	}

	if err := w.Complete(); err != nil {
		var stepErr *wizard.StepError
		if errors.As(err, &stepErr) {
			return &form.ValidationError{Fields: []form.FieldError{
				{Field: "application_data", Reason: stepErr.Reason},
			}}
		}
		return err
	}
	return nil
}

// splitUploadField parses a "<travelerIndex>/<documentKey>" file field name.
func splitUploadField(name string) (int, string, bool) {
	idxStr, key, found := strings.Cut(name, "/")
	if !found || key == "" {
		return 0, "", false
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return 0, "", false
	}
	return idx, key, true
}

// buildState folds values and file selections into a form state, checking
// each attached file against the upload limits as it goes.
func (s *applicationService) buildState(values map[string]string, files []FileUpload) (form.State, error) {
	state := form.NewState()
	for name, value := range values {
		state = state.Apply(name, form.TextValue(value))
	}

	byField := make(map[string][]form.FileRef)
	for _, f := range files {
		if err := s.checkFile(f.Header); err != nil {
			return nil, err
		}
		byField[f.FieldName] = append(byField[f.FieldName], form.FileRef{
			Name:        f.Header.Filename,
			Size:        f.Header.Size,
			ContentType: f.Header.Header.Get("Content-Type"),
		})
	}
	for name, refs := range byField {
		if len(refs) > s.uploadCfg.MaxFilesPerField {
			return nil, &form.ValidationError{Fields: []form.FieldError{
				{Field: name, Reason: fmt.Sprintf("at most %d files per field", s.uploadCfg.MaxFilesPerField)},
			}}
		}
		state = state.SetFiles(name, refs)
	}
	return state, nil
}

// checkFile validates extension, size, and sniffed content type.
func (s *applicationService) checkFile(header *multipart.FileHeader) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return domain.ErrUnsupportedFileType
	}
	maxBytes := s.uploadCfg.MaxFileSizeMB * 1024 * 1024
	if header.Size > maxBytes {
		return domain.ErrFileTooLarge
	}
	return nil
}

// uploadFiles pushes each file to object storage and links it to the
// application. Files are processed strictly in order; a failure is logged
// and skipped so the remaining files still land.
func (s *applicationService) uploadFiles(ctx context.Context, userID, applicationID uuid.UUID, files []FileUpload, result *SubmissionResult) {
	for _, f := range files {
		if err := s.uploadOne(ctx, userID, applicationID, f); err != nil {
			log.Printf("applicationService: upload of %s for application %s failed: %v",
				f.Header.Filename, applicationID, err)
			result.Failed = append(result.Failed, f.Header.Filename)
			continue
		}
		result.Uploaded++
	}
}

func (s *applicationService) uploadOne(ctx context.Context, userID, applicationID uuid.UUID, f FileUpload) error {
	buf := make([]byte, 512)
	n, err := f.File.Read(buf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])
	fileType, ok := domain.AllowedContentTypes[detectedType]
	if !ok {
		return domain.ErrUnsupportedFileType
	}
	if _, err := f.File.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seeking file: %w", err)
	}

	key := fmt.Sprintf("%s/%s/%s/%s", userID, applicationID, f.FieldName, f.Header.Filename)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        f.File,
		ContentType: detectedType,
		Size:        f.Header.Size,
	})
	if err != nil {
		return fmt.Errorf("uploading to storage: %w", err)
	}

	file := &domain.ApplicationFile{
		ApplicationID: applicationID,
		FieldName:     f.FieldName,
		FilePath:      key,
		FileName:      f.Header.Filename,
		FileSize:      f.Header.Size,
		FileType:      string(fileType),
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		return fmt.Errorf("linking file: %w", err)
	}
	return nil
}

// sendReceivedEmail notifies the applicant. Email delivery is best effort;
// a failure never affects the already persisted application.
func (s *applicationService) sendReceivedEmail(ctx context.Context, userID uuid.UUID, subjectName string, applicationID uuid.UUID) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Printf("applicationService: looking up user %s for email failed: %v", userID, err)
		return
	}
	if err := s.email.SendApplicationReceivedEmail(ctx, user.Email, user.FullName, subjectName, applicationID.String()); err != nil {
		log.Printf("applicationService: confirmation email to %s failed: %v", user.Email, err)
	}
}

func (s *applicationService) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VisaApplication, error) {
	return s.appRepo.GetByID(ctx, userID, id)
}

func (s *applicationService) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.VisaApplication, int, error) {
	return s.appRepo.ListByUser(ctx, userID, offset, limit)
}

func (s *applicationService) ListFiles(ctx context.Context, userID, applicationID uuid.UUID) ([]domain.ApplicationFile, error) {
	if _, err := s.appRepo.GetByID(ctx, userID, applicationID); err != nil {
		return nil, err
	}
	return s.fileRepo.ListByApplication(ctx, applicationID)
}

func (s *applicationService) GetFileURL(ctx context.Context, userID, applicationID, fileID uuid.UUID) (string, error) {
	if _, err := s.appRepo.GetByID(ctx, userID, applicationID); err != nil {
		return "", err
	}
	files, err := s.fileRepo.ListByApplication(ctx, applicationID)
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if f.ID == fileID {
			return s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, f.FilePath, s.s3cfg.PresignExpiry)
		}
	}
	return "", domain.ErrNotFound
}
