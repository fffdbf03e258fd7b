package dto

// CalculateRouteQuery - параметры GET /calculate-route
type CalculateRouteQuery struct {
	Start string `query:"start"`
	End   string `query:"end"`
}

// OpenDialogRequest - открытие диалога создания заявки
type OpenDialogRequest struct {
	NGOID int64 `json:"ngo_id" validate:"required,gt=0"`
}

// AddItemRequest - добавление позиции склада в черновик
type AddItemRequest struct {
	ItemID      int64 `json:"item_id" validate:"required,gt=0"`
	WarehouseID int64 `json:"ware_house_id" validate:"required,gt=0"`
	Quantity    int   `json:"quantity" validate:"omitempty,min=0"`
}

// SetQuantityRequest - изменение количества позиции
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CalculateDialogRoutesRequest - расчет маршрутов для диалога
type CalculateDialogRoutesRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SelectRouteRequest - выбор маршрута пользователем
type SelectRouteRequest struct {
	Index *int `json:"index" validate:"required"`
}

// RouteCostReportQuery - фильтр отчёта о стоимости доставок (даты в RFC3339)
type RouteCostReportQuery struct {
	NGOID *int64 `query:"ngo_id" validate:"omitempty,gt=0"`
	From  string `query:"from" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	To    string `query:"to" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}
