package invoice

import (
	"context"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils"
	"fitcoach-backend/internal/utils/mailing"
	"fitcoach-backend/internal/utils/markdown"
	"fitcoach-backend/internal/utils/storage"
	"fitcoach-backend/pkg/customer"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultPaymentTermDays = 14

type (
	InvoiceService interface {
		CreateInvoice(ctx context.Context, req domain.CreateInvoiceRequest) (domain.InvoiceResponse, error)
		UpdateInvoice(ctx context.Context, id string, req domain.UpdateInvoiceRequest) (domain.InvoiceResponse, error)
		DeleteInvoice(ctx context.Context, id string) error
		GetInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceSummary, int64, error)
		GetInvoiceByID(ctx context.Context, id string) (domain.InvoiceResponse, error)
		RenderPDF(ctx context.Context, id string) ([]byte, string, error)
		SendInvoice(ctx context.Context, id string) (domain.InvoiceResponse, error)
		SettleInvoice(ctx context.Context, id string) error
	}

	invoiceService struct {
		invoiceRepository  InvoiceRepository
		customerRepository customer.CustomerRepository
		renderer           PDFRenderer
		s3                 storage.AwsS3
		mailer             mailing.Mailer
		currency           string
		companyName        string
		defaultVAT         decimal.Decimal
	}
)

// NewInvoiceService accepts a nil renderer; PDF endpoints then report
// ErrPDFRendererUnavailable.
func NewInvoiceService(
	invoiceRepository InvoiceRepository,
	customerRepository customer.CustomerRepository,
	renderer PDFRenderer,
	s3 storage.AwsS3,
	mailer mailing.Mailer,
) InvoiceService {
	vat, err := decimal.NewFromString(utils.GetConfig("INVOICE_VAT_PERCENT"))
	if err != nil {
		log.Warnf("INVOICE_VAT_PERCENT is not a number, using 0: %v", err)
		vat = decimal.Zero
	}
	return &invoiceService{
		invoiceRepository:  invoiceRepository,
		customerRepository: customerRepository,
		renderer:           renderer,
		s3:                 s3,
		mailer:             mailer,
		currency:           utils.GetConfig("CURRENCY"),
		companyName:        utils.GetConfig("COMPANY_NAME"),
		defaultVAT:         vat,
	}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req domain.CreateInvoiceRequest) (domain.InvoiceResponse, error) {
	if _, err := uuid.Parse(req.CustomerID); err != nil {
		return domain.InvoiceResponse{}, domain.ErrParseUUID
	}
	c, err := s.customerRepository.GetCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InvoiceResponse{}, domain.ErrCustomerNotFound
		}
		return domain.InvoiceResponse{}, err
	}

	issueDate := today()
	if req.IssueDate != "" {
		if issueDate, err = time.Parse(domain.DateLayout, req.IssueDate); err != nil {
			return domain.InvoiceResponse{}, domain.ErrInvalidDate
		}
	}
	dueDate := issueDate.AddDate(0, 0, defaultPaymentTermDays)
	if req.DueDate != "" {
		if dueDate, err = time.Parse(domain.DateLayout, req.DueDate); err != nil {
			return domain.InvoiceResponse{}, domain.ErrInvalidDate
		}
	}
	if dueDate.Before(issueDate) {
		return domain.InvoiceResponse{}, domain.ErrInvoiceDueBeforeIssue
	}

	vat, err := parsePercent(req.VATPercent, s.defaultVAT)
	if err != nil {
		return domain.InvoiceResponse{}, err
	}

	invoice := &entities.Invoice{
		ID:         uuid.New(),
		CustomerID: c.ID,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Currency:   s.currency,
		VATPercent: vat,
		Status:     domain.InvoiceStatusDraft,
		Notes:      req.Notes,
	}

	items, err := buildItems(invoice.ID, req.Items)
	if err != nil {
		return domain.InvoiceResponse{}, err
	}
	invoice.Items = items
	applyTotals(invoice, items)

	if err := s.invoiceRepository.CreateInvoice(ctx, invoice); err != nil {
		return domain.InvoiceResponse{}, err
	}
	invoice.Customer = c
	return toInvoiceResponse(invoice, decimal.Zero), nil
}

// UpdateInvoice edits a draft. Once an invoice has left draft only its status
// may change.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, req domain.UpdateInvoiceRequest) (domain.InvoiceResponse, error) {
	invoice, err := s.getInvoice(ctx, id)
	if err != nil {
		return domain.InvoiceResponse{}, err
	}

	editsContent := req.IssueDate != nil || req.DueDate != nil || req.VATPercent != nil || req.Notes != nil || req.Items != nil
	if editsContent && invoice.Status != domain.InvoiceStatusDraft {
		return domain.InvoiceResponse{}, domain.ErrInvoiceNotEditable
	}

	if req.IssueDate != nil {
		if invoice.IssueDate, err = time.Parse(domain.DateLayout, *req.IssueDate); err != nil {
			return domain.InvoiceResponse{}, domain.ErrInvalidDate
		}
	}
	if req.DueDate != nil {
		if invoice.DueDate, err = time.Parse(domain.DateLayout, *req.DueDate); err != nil {
			return domain.InvoiceResponse{}, domain.ErrInvalidDate
		}
	}
	if invoice.DueDate.Before(invoice.IssueDate) {
		return domain.InvoiceResponse{}, domain.ErrInvoiceDueBeforeIssue
	}
	if req.VATPercent != nil {
		if invoice.VATPercent, err = parsePercent(*req.VATPercent, invoice.VATPercent); err != nil {
			return domain.InvoiceResponse{}, err
		}
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}

	var newItems []*entities.InvoiceItem
	if req.Items != nil {
		if newItems, err = buildItems(invoice.ID, *req.Items); err != nil {
			return domain.InvoiceResponse{}, err
		}
		applyTotals(invoice, newItems)
	} else {
		applyTotals(invoice, invoice.Items)
	}

	if req.Status != nil {
		if !canTransition(invoice.Status, *req.Status) {
			return domain.InvoiceResponse{}, domain.ErrInvoiceStatusTransition
		}
		setStatus(invoice, *req.Status)
	}

	if err := s.invoiceRepository.UpdateInvoice(ctx, invoice, newItems); err != nil {
		return domain.InvoiceResponse{}, err
	}
	if newItems != nil {
		invoice.Items = newItems
	}
	return s.withPayments(ctx, invoice)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) error {
	if _, err := s.getInvoice(ctx, id); err != nil {
		return err
	}
	count, err := s.invoiceRepository.CountPayments(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrInvoiceHasPayments
	}
	return s.invoiceRepository.DeleteInvoice(ctx, id)
}

func (s *invoiceService) GetInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceSummary, int64, error) {
	if filter.CustomerID != "" {
		if _, err := uuid.Parse(filter.CustomerID); err != nil {
			return nil, 0, domain.ErrParseUUID
		}
	}
	invoices, count, err := s.invoiceRepository.GetInvoices(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.InvoiceSummary, 0, len(invoices))
	for _, inv := range invoices {
		response = append(response, toInvoiceSummary(inv))
	}
	return response, count, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, id string) (domain.InvoiceResponse, error) {
	invoice, err := s.getInvoice(ctx, id)
	if err != nil {
		return domain.InvoiceResponse{}, err
	}
	return s.withPayments(ctx, invoice)
}

// RenderPDF returns the invoice PDF and its file name.
func (s *invoiceService) RenderPDF(ctx context.Context, id string) ([]byte, string, error) {
	invoice, err := s.getInvoice(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := s.render(ctx, invoice)
	if err != nil {
		return nil, "", err
	}
	return pdf, invoice.Number + ".pdf", nil
}

// SendInvoice mails the PDF to the customer and marks a draft as sent. The
// uploaded copy is best effort: a storage failure is logged and the mail
// still goes out.
func (s *invoiceService) SendInvoice(ctx context.Context, id string) (domain.InvoiceResponse, error) {
	invoice, err := s.getInvoice(ctx, id)
	if err != nil {
		return domain.InvoiceResponse{}, err
	}
	if invoice.Status == domain.InvoiceStatusPaid || invoice.Status == domain.InvoiceStatusCancelled {
		return domain.InvoiceResponse{}, domain.ErrInvoiceAlreadySettled
	}
	if invoice.Customer == nil || invoice.Customer.Email == "" {
		return domain.InvoiceResponse{}, domain.ErrInvoiceCustomerNoEmail
	}

	pdf, err := s.render(ctx, invoice)
	if err != nil {
		return domain.InvoiceResponse{}, err
	}
	fileName := invoice.Number + ".pdf"

	if objectKey, err := s.s3.UploadBytes(fileName, pdf, "application/pdf", "invoices"); err != nil {
		log.Warnf("invoice %s pdf not stored: %v", invoice.Number, err)
	} else {
		invoice.PDFURL = s.s3.GetPublicLinkKey(objectKey)
	}

	body := markdown.ToHTML(fmt.Sprintf(
		"Hi %s,\n\nPlease find invoice **%s** attached.\n\nTotal due: **%s %s** by %s.\n\nThank you,\n%s",
		invoice.Customer.Name, invoice.Number, invoice.Currency, invoice.Total.StringFixed(2),
		invoice.DueDate.Format("2 Jan 2006"), s.companyName,
	))
	subject := fmt.Sprintf("%s invoice %s", s.companyName, invoice.Number)
	if err := s.mailer.SendMail(invoice.Customer.Email, subject, body, mailing.Attachment{FileName: fileName, Content: pdf}); err != nil {
		return domain.InvoiceResponse{}, err
	}

	if invoice.Status == domain.InvoiceStatusDraft {
		invoice.Status = domain.InvoiceStatusSent
	}
	now := time.Now()
	invoice.SentAt = &now

	if err := s.invoiceRepository.UpdateInvoice(ctx, invoice, nil); err != nil {
		return domain.InvoiceResponse{}, err
	}
	return s.withPayments(ctx, invoice)
}

// SettleInvoice marks the invoice paid once completed payments cover the
// total, and reopens a paid invoice when refunds drop it below.
func (s *invoiceService) SettleInvoice(ctx context.Context, id string) error {
	invoice, err := s.getInvoice(ctx, id)
	if err != nil {
		return err
	}
	if invoice.Status == domain.InvoiceStatusCancelled {
		return nil
	}

	paid, err := s.invoiceRepository.SumCompletedPayments(ctx, id)
	if err != nil {
		return err
	}

	switch {
	case paid.GreaterThanOrEqual(invoice.Total) && invoice.Status != domain.InvoiceStatusPaid:
		setStatus(invoice, domain.InvoiceStatusPaid)
	case paid.LessThan(invoice.Total) && invoice.Status == domain.InvoiceStatusPaid:
		setStatus(invoice, domain.InvoiceStatusSent)
	default:
		return nil
	}

	log.Infof("invoice %s is now %s (paid %s of %s)", invoice.Number, invoice.Status, paid.StringFixed(2), invoice.Total.StringFixed(2))
	return s.invoiceRepository.UpdateInvoice(ctx, invoice, nil)
}

func (s *invoiceService) render(ctx context.Context, invoice *entities.Invoice) ([]byte, error) {
	if s.renderer == nil {
		return nil, domain.ErrPDFRendererUnavailable
	}
	html, err := renderHTML(s.companyName, invoice)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderPDF(ctx, html)
}

func (s *invoiceService) getInvoice(ctx context.Context, id string) (*entities.Invoice, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	invoice, err := s.invoiceRepository.GetInvoiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) withPayments(ctx context.Context, invoice *entities.Invoice) (domain.InvoiceResponse, error) {
	paid, err := s.invoiceRepository.SumCompletedPayments(ctx, invoice.ID.String())
	if err != nil {
		return domain.InvoiceResponse{}, err
	}
	return toInvoiceResponse(invoice, paid), nil
}

func setStatus(invoice *entities.Invoice, status string) {
	now := time.Now()
	switch status {
	case domain.InvoiceStatusPaid:
		invoice.PaidAt = &now
	case domain.InvoiceStatusSent:
		invoice.PaidAt = nil
		if invoice.SentAt == nil {
			invoice.SentAt = &now
		}
	case domain.InvoiceStatusDraft, domain.InvoiceStatusCancelled:
		invoice.PaidAt = nil
	}
	invoice.Status = status
}

func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func toInvoiceSummary(inv *entities.Invoice) domain.InvoiceSummary {
	return domain.InvoiceSummary{
		ID:         inv.ID.String(),
		Number:     inv.Number,
		CustomerID: inv.CustomerID.String(),
		IssueDate:  inv.IssueDate,
		DueDate:    inv.DueDate,
		Total:      inv.Total,
		Currency:   inv.Currency,
		Status:     inv.Status,
	}
}

func toInvoiceResponse(inv *entities.Invoice, paid decimal.Decimal) domain.InvoiceResponse {
	outstanding := inv.Total.Sub(paid)
	if outstanding.IsNegative() || inv.Status == domain.InvoiceStatusCancelled {
		outstanding = decimal.Zero
	}

	res := domain.InvoiceResponse{
		InvoiceSummary: toInvoiceSummary(inv),
		VATPercent:     inv.VATPercent,
		Subtotal:       inv.Subtotal,
		VATAmount:      inv.VATAmount,
		AmountPaid:     paid,
		Outstanding:    outstanding,
		PDFURL:         inv.PDFURL,
		Notes:          inv.Notes,
		SentAt:         inv.SentAt,
		PaidAt:         inv.PaidAt,
		Items:          make([]domain.InvoiceItemResponse, 0, len(inv.Items)),
	}
	if inv.Customer != nil {
		res.CustomerName = inv.Customer.Name
		res.CustomerEmail = inv.Customer.Email
	}
	for _, item := range inv.Items {
		res.Items = append(res.Items, domain.InvoiceItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}
	return res
}
