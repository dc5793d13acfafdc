package usecase

import "context"

type CatalogUC interface {
	AddProduct(ctx context.Context, req *AddProductReq) (*ProductRes, error)
	ListProducts(ctx context.Context, req *ListProductsReq) ([]ProductRes, error)
	Categories(ctx context.Context) ([]string, error)
}

type CartUC interface {
	OpenCart(ctx context.Context) (*CartRes, error)
	GetCart(ctx context.Context, cartID string) (*CartRes, error)
	AddItem(ctx context.Context, cartID string, productID string) (*CartRes, error)
	AdjustQuantity(ctx context.Context, cartID string, productID string, delta int) (*CartRes, error)
	Checkout(ctx context.Context, req *CheckoutReq) (*SaleRes, error)
	CancelCart(ctx context.Context, cartID string) error
}

type MetricsUC interface {
	Summary(ctx context.Context) (*SummaryRes, error)
	WeeklySales(ctx context.Context) (*WeeklySalesRes, error)
	ListSales(ctx context.Context) ([]SaleRes, error)
	Insight(ctx context.Context, req *InsightReq) (*InsightRes, error)
}

type ReportUC interface {
	Export(ctx context.Context, kind string) (*ExportRes, error)
	RecentExports(ctx context.Context) ([]ExportObjectRes, error)
}

type SessionUC interface {
	Login(ctx context.Context, req *LoginReq) (*SessionRes, error)
	Restore(ctx context.Context, token string) (*UserRes, error)
	Logout(ctx context.Context, token string) error
}
