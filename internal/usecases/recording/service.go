package recording

import (
	"fmt"

	"github.com/halsbagel/sales-dashboard-api/infrastructure/repository"
	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/halsbagel/sales-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Service implementa a interface Recorder
type Service struct {
	salesRepository         repository.SalesRepository
	targetRepository        repository.TargetRepository
	minimumTargetRepository repository.MinimumTargetRepository
}

// NewService cria uma nova instância do serviço de lançamentos
func NewService(
	salesRepo repository.SalesRepository,
	targetRepo repository.TargetRepository,
	minimumTargetRepo repository.MinimumTargetRepository,
) Recorder {
	return &Service{
		salesRepository:         salesRepo,
		targetRepository:        targetRepo,
		minimumTargetRepository: minimumTargetRepo,
	}
}

// UpsertSalesRecord grava o lançamento de um dia. Os campos derivados
// (total de vendas, preço médio, ano e mês) são sempre recalculados a
// partir do payload; o cliente nunca os envia.
func (s *Service) UpsertSalesRecord(req *domain.SalesRecordRequest) (*domain.SalesRecord, error) {
	date, err := utils.ParseDate(req.Date)
	if err != nil || req.Date == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	record := &domain.SalesRecord{
		Date:          *date,
		StoreSales:    req.StoreSales,
		DeliverySales: req.DeliverySales,
		OtherSales:    req.OtherSales,
		CustomerCount: req.CustomerCount,
	}
	record.Normalize()

	if err := s.salesRepository.Upsert(record); err != nil {
		logrus.WithError(err).WithField("date", req.Date).
			Error("Erro ao gravar lançamento de vendas")
		return nil, fmt.Errorf("erro ao gravar lançamento de vendas: %w", err)
	}

	return record, nil
}

// ListSalesRecords lista os lançamentos de um mês específico
func (s *Service) ListSalesRecords(year, month int) ([]*domain.SalesRecord, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	records, err := s.salesRepository.Fetch(year, month)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lançamentos de vendas: %w", err)
	}

	return records, nil
}

// GetSalesRecord busca o lançamento de uma data específica
func (s *Service) GetSalesRecord(date string) (*domain.SalesRecord, error) {
	parsed, err := utils.ParseDate(date)
	if err != nil || date == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	record, err := s.salesRepository.GetByDate(*parsed)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lançamento de vendas: %w", err)
	}

	if record == nil {
		return nil, ErrRecordNotFound
	}

	return record, nil
}

// DeleteSalesRecord remove o lançamento de uma data específica
func (s *Service) DeleteSalesRecord(date string) error {
	parsed, err := utils.ParseDate(date)
	if err != nil || date == "" {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	deleted, err := s.salesRepository.DeleteByDate(*parsed)
	if err != nil {
		return fmt.Errorf("erro ao remover lançamento de vendas: %w", err)
	}

	if !deleted {
		return ErrRecordNotFound
	}

	logrus.WithField("date", date).Info("Lançamento de vendas removido")

	return nil
}

// UpsertTargetRecord grava a meta de um dia
func (s *Service) UpsertTargetRecord(req *domain.TargetRecordRequest) (*domain.TargetRecord, error) {
	date, err := utils.ParseDate(req.Date)
	if err != nil || req.Date == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	target := &domain.TargetRecord{
		Date:        *date,
		TargetSales: req.TargetSales,
	}
	target.Normalize()

	if err := s.targetRepository.Upsert(target); err != nil {
		logrus.WithError(err).WithField("date", req.Date).
			Error("Erro ao gravar meta")
		return nil, fmt.Errorf("erro ao gravar meta: %w", err)
	}

	return target, nil
}

// ListTargetRecords lista as metas de um mês específico
func (s *Service) ListTargetRecords(year, month int) ([]*domain.TargetRecord, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	targets, err := s.targetRepository.Fetch(year, month)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar metas: %w", err)
	}

	return targets, nil
}

// DeleteTargetRecord remove a meta de uma data específica
func (s *Service) DeleteTargetRecord(date string) error {
	parsed, err := utils.ParseDate(date)
	if err != nil || date == "" {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	deleted, err := s.targetRepository.DeleteByDate(*parsed)
	if err != nil {
		return fmt.Errorf("erro ao remover meta: %w", err)
	}

	if !deleted {
		return ErrRecordNotFound
	}

	logrus.WithField("date", date).Info("Meta removida")

	return nil
}

// ListMinimumTargets lista os pisos mensais de vendas
func (s *Service) ListMinimumTargets() ([]*domain.MinimumTarget, error) {
	targets, err := s.minimumTargetRepository.List()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pisos mensais: %w", err)
	}

	return targets, nil
}

// UpsertMinimumTarget grava o piso de vendas de um mês do calendário.
// O piso vale para o mês em qualquer ano (1 = janeiro, 12 = dezembro).
func (s *Service) UpsertMinimumTarget(month int, minSales int64) (*domain.MinimumTarget, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	if minSales < 0 {
		minSales = 0
	}

	target := &domain.MinimumTarget{
		Month:    month,
		MinSales: minSales,
	}

	if err := s.minimumTargetRepository.Upsert(target); err != nil {
		return nil, fmt.Errorf("erro ao gravar piso mensal: %w", err)
	}

	return target, nil
}
