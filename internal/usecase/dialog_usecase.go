package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/domain/repository"
	"github.com/supply-route-service/internal/pkg/errors"
	"github.com/supply-route-service/internal/usecase/dto"
)

// MapScene - карта диалога, состояние которой забирает клиент
type MapScene interface {
	repository.MapProvider
	MarkReady()
	Snapshot() domain.MapSnapshot
}

// RouteCalculator - расчет маршрутов между адресами
type RouteCalculator interface {
	CalculateRoutes(ctx context.Context, start, end string) ([]domain.Route, error)
}

// SupplyRequestService - склад и отправка заявок
type SupplyRequestService interface {
	FindStockItem(ctx context.Context, warehouseID, itemID int64) (*domain.WarehouseItem, error)
	Submit(ctx context.Context, payload *domain.SupplyRequestPayload) (*domain.SupplyRequest, error)
}

type dialogSession struct {
	mu sync.Mutex

	id        uuid.UUID
	draft     *domain.SupplyRequestDraft
	scene     MapScene
	selection *RouteSelection
	start     string
	end       string
	seq       uint64
	closed    bool
	createdAt time.Time
	updatedAt time.Time
}

// DialogUseCase - диалоги создания заявки. У НКО не больше одного открытого диалога
type DialogUseCase struct {
	routes       RouteCalculator
	requests     SupplyRequestService
	newScene     func() MapScene
	logger       *zap.Logger
	readyTimeout time.Duration
	fitPadding   int

	mu      sync.Mutex
	dialogs map[uuid.UUID]*dialogSession
	byNGO   map[int64]uuid.UUID
	now     func() time.Time
}

func NewDialogUseCase(
	routes RouteCalculator,
	requests SupplyRequestService,
	newScene func() MapScene,
	logger *zap.Logger,
	readyTimeout time.Duration,
	fitPadding int,
) *DialogUseCase {
	return &DialogUseCase{
		routes:       routes,
		requests:     requests,
		newScene:     newScene,
		logger:       logger,
		readyTimeout: readyTimeout,
		fitPadding:   fitPadding,
		dialogs:      make(map[uuid.UUID]*dialogSession),
		byNGO:        make(map[int64]uuid.UUID),
		now:          time.Now,
	}
}

// Open открывает диалог для НКО
func (uc *DialogUseCase) Open(ngoID int64) (*dto.DialogResponse, error) {
	if ngoID <= 0 {
		return nil, errors.ErrValidation.WithDetails(map[string]interface{}{"ngo_id": "must be positive"})
	}

	uc.mu.Lock()
	if existing, ok := uc.byNGO[ngoID]; ok {
		uc.mu.Unlock()
		return nil, errors.ErrDialogAlreadyOpen.WithDetails(map[string]interface{}{
			"dialog_id": existing.String(),
		})
	}

	scene := uc.newScene()
	now := uc.now()
	d := &dialogSession{
		id:        uuid.New(),
		draft:     domain.NewSupplyRequestDraft(ngoID),
		scene:     scene,
		selection: NewRouteSelection(scene, uc.logger.With(zap.Int64("ngo_id", ngoID)), uc.fitPadding),
		createdAt: now,
		updatedAt: now,
	}
	uc.dialogs[d.id] = d
	uc.byNGO[ngoID] = d.id
	uc.mu.Unlock()

	uc.logger.Info("Dialog opened",
		zap.String("dialog_id", d.id.String()),
		zap.Int64("ngo_id", ngoID))

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view(), nil
}

func (uc *DialogUseCase) Get(id uuid.UUID) (*dto.DialogResponse, error) {
	d, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view(), nil
}

// Close закрывает диалог и убирает маршруты с карты
func (uc *DialogUseCase) Close(id uuid.UUID) error {
	d, err := uc.session(id)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	uc.closeLocked(d)

	uc.logger.Info("Dialog closed", zap.String("dialog_id", id.String()))
	return nil
}

// MapReady - клиент инициализировал карту
func (uc *DialogUseCase) MapReady(id uuid.UUID) (*dto.DialogResponse, error) {
	d, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	d.scene.MarkReady()
	d.scene.InvalidateSize()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.touch(uc.now())
	return d.view(), nil
}

// AddItem добавляет позицию склада. Рассчитанные маршруты сбрасываются
func (uc *DialogUseCase) AddItem(ctx context.Context, id uuid.UUID, req dto.AddItemRequest) (*dto.DialogResponse, error) {
	d, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	stock, err := uc.requests.FindStockItem(ctx, req.WarehouseID, req.ItemID)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, errors.ErrDialogNotFound
	}

	err = d.draft.AddItem(domain.ItemSelection{
		ItemID:      req.ItemID,
		Quantity:    quantity,
		MaxQuantity: stock.Quantity,
		WarehouseID: req.WarehouseID,
	})
	if err != nil {
		return nil, err
	}

	d.resetRoutes()
	d.touch(uc.now())
	return d.view(), nil
}

// SetQuantity меняет количество в пределах остатка. Маршруты сохраняются
func (uc *DialogUseCase) SetQuantity(id uuid.UUID, itemID int64, quantity int) (*dto.DialogResponse, error) {
	d, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, errors.ErrDialogNotFound
	}

	if !d.draft.SetQuantity(itemID, quantity) {
		return nil, errors.ErrNotFound.WithDetails(map[string]interface{}{"item_id": itemID})
	}

	d.touch(uc.now())
	return d.view(), nil
}

// RemoveItem удаляет позицию. Рассчитанные маршруты сбрасываются
func (uc *DialogUseCase) RemoveItem(id uuid.UUID, itemID int64) (*dto.DialogResponse, error) {
	d, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, errors.ErrDialogNotFound
	}

	if !d.draft.RemoveItem(itemID) {
		return nil, errors.ErrNotFound.WithDetails(map[string]interface{}{"item_id": itemID})
	}

	d.resetRoutes()
	d.touch(uc.now())
	return d.view(), nil
}

// CalculateRoutes рассчитывает маршруты, загружает их на карту и выделяет самый короткий.
// Применяется только ответ на последний запрос, более ранние отбрасываются
func (uc *DialogUseCase) CalculateRoutes(ctx context.Context, id uuid.UUID, start, end string) (*dto.DialogResponse, error) {
	d, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	if len(d.draft.Items) == 0 {
		d.mu.Unlock()
		return nil, errors.ErrIncompleteSelection.WithDetails(map[string]interface{}{
			"reason": "no items selected",
		})
	}
	d.seq++
	seq := d.seq
	d.mu.Unlock()

	routes, err := uc.routes.CalculateRoutes(ctx, start, end)
	if err != nil {
		return nil, err
	}

	if err := uc.awaitMap(ctx, d); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, errors.ErrDialogNotFound
	}
	if d.seq != seq {
		uc.logger.Info("Discarding stale route calculation",
			zap.String("dialog_id", id.String()),
			zap.Uint64("seq", seq),
			zap.Uint64("latest", d.seq))
		return nil, errors.ErrStaleCalculation
	}

	if err := d.selection.Load(routes); err != nil {
		return nil, err
	}
	d.start, d.end = start, end
	d.touch(uc.now())

	return d.view(), nil
}

// SelectRoute выделяет маршрут index
func (uc *DialogUseCase) SelectRoute(id uuid.UUID, index int) (*dto.DialogResponse, error) {
	d, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, errors.ErrDialogNotFound
	}

	if d.selection.State() == SelectionDisplayed && !isReady(d.scene) {
		return nil, errors.ErrMapNotReady
	}
	if err := d.selection.Highlight(index); err != nil {
		return nil, err
	}

	d.touch(uc.now())
	return d.view(), nil
}

// Submit собирает заявку из черновика и выделенного маршрута и отправляет её.
// После успешной отправки диалог закрывается
func (uc *DialogUseCase) Submit(ctx context.Context, id uuid.UUID) (*dto.SubmitResponse, error) {
	d, err := uc.session(id)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, errors.ErrDialogNotFound
	}

	highlighted, ok := d.selection.HighlightedIndex()
	if !ok {
		highlighted = -1
	}
	payload, err := AssembleSupplyRequest(d.draft.NGOID, d.draft.Items, d.selection.Routes(), highlighted)
	if err != nil {
		return nil, err
	}

	created, err := uc.requests.Submit(ctx, payload)
	if err != nil {
		return nil, err
	}

	uc.closeLocked(d)
	uc.logger.Info("Dialog submitted",
		zap.String("dialog_id", id.String()),
		zap.Int64("supply_request_id", created.ID))

	return &dto.SubmitResponse{SupplyRequest: created, Payload: payload}, nil
}

// CloseIdle закрывает диалоги без активности дольше idle и возвращает их количество
func (uc *DialogUseCase) CloseIdle(idle time.Duration) int {
	threshold := uc.now().Add(-idle)

	uc.mu.Lock()
	candidates := make([]*dialogSession, 0)
	for _, d := range uc.dialogs {
		candidates = append(candidates, d)
	}
	uc.mu.Unlock()

	closed := 0
	for _, d := range candidates {
		d.mu.Lock()
		if !d.closed && d.updatedAt.Before(threshold) {
			uc.closeLocked(d)
			closed++
		}
		d.mu.Unlock()
	}

	if closed > 0 {
		uc.logger.Info("Idle dialogs closed", zap.Int("count", closed))
	}
	return closed
}

func (uc *DialogUseCase) session(id uuid.UUID) (*dialogSession, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	d, ok := uc.dialogs[id]
	if !ok {
		return nil, errors.ErrDialogNotFound.WithDetails(map[string]interface{}{"dialog_id": id.String()})
	}
	return d, nil
}

// closeLocked вызывается под d.mu
func (uc *DialogUseCase) closeLocked(d *dialogSession) {
	if d.closed {
		return
	}
	d.selection.Clear()
	d.closed = true

	uc.mu.Lock()
	delete(uc.dialogs, d.id)
	if current, ok := uc.byNGO[d.draft.NGOID]; ok && current == d.id {
		delete(uc.byNGO, d.draft.NGOID)
	}
	uc.mu.Unlock()
}

func (uc *DialogUseCase) awaitMap(ctx context.Context, d *dialogSession) error {
	if isReady(d.scene) {
		return nil
	}

	timer := time.NewTimer(uc.readyTimeout)
	defer timer.Stop()

	select {
	case <-d.scene.Ready():
		return nil
	case <-timer.C:
		uc.logger.Warn("Map did not become ready in time",
			zap.String("dialog_id", d.id.String()),
			zap.Duration("timeout", uc.readyTimeout))
		return errors.ErrMapNotReady
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isReady(scene MapScene) bool {
	select {
	case <-scene.Ready():
		return true
	default:
		return false
	}
}

// resetRoutes вызывается под d.mu. Увеличение seq отменяет расчет, который ещё идёт
func (d *dialogSession) resetRoutes() {
	d.selection.Clear()
	d.seq++
	d.start, d.end = "", ""
}

func (d *dialogSession) touch(now time.Time) {
	d.updatedAt = now
}

// view вызывается под d.mu
func (d *dialogSession) view() *dto.DialogResponse {
	resp := &dto.DialogResponse{
		ID:        d.id.String(),
		NGOID:     d.draft.NGOID,
		State:     d.selection.State().String(),
		Items:     append([]domain.ItemSelection{}, d.draft.Items...),
		Start:     d.start,
		End:       d.end,
		Routes:    dto.NewRouteResponses(d.selection.Routes()),
		Map:       d.scene.Snapshot(),
		CreatedAt: d.createdAt,
		UpdatedAt: d.updatedAt,
	}
	if warehouseID, ok := d.draft.WarehouseID(); ok {
		resp.WarehouseID = &warehouseID
	}
	if primary, ok := d.selection.PrimaryIndex(); ok {
		resp.PrimaryIndex = &primary
	}
	if highlighted, ok := d.selection.HighlightedIndex(); ok {
		resp.HighlightedIndex = &highlighted
	}
	return resp
}
