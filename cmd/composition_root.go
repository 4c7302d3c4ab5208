package cmd

import (
	"fmt"
	"log/slog"
	"time"

	adapterhttp "msosihub/internal/adapters/in/http"
	"msosihub/internal/adapters/out/postgres"
	"msosihub/internal/adapters/out/rediscart"
	"msosihub/internal/core/application/usecases/commands"
	"msosihub/internal/core/application/usecases/queries"
	"msosihub/internal/core/domain/model/kernel"
	"msosihub/internal/core/domain/services"
	"msosihub/internal/core/ports"
	"msosihub/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cartStore  ports.CartStore
	notifier   ports.Notifier
	calculator services.ReceiptCalculator

	welcomeBonus  kernel.Money
	paymentMaxAge time.Duration
	logger        *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	notifier ports.Notifier,
	logger *slog.Logger,
) (CompositionRoot, error) {
	deliveryFee, err := kernel.NewMoney(config.DeliveryFee)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid delivery fee: %w", err)
	}

	welcomeBonus := kernel.Zero()
	if config.WelcomeBonus > 0 {
		welcomeBonus, err = kernel.NewMoney(config.WelcomeBonus)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("invalid welcome bonus: %w", err)
		}
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:     rediscart.NewStore(redisClient, config.CartTTL),
		notifier:      notifier,
		calculator:    services.NewReceiptCalculator(deliveryFee),
		welcomeBonus:  welcomeBonus,
		paymentMaxAge: config.PaymentMaxAge,
		logger:        logger,
	}, nil
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.notifier, c.welcomeBonus)
}

func (c *CompositionRoot) CreateRechargeWalletCommandHandler() commands.RechargeWalletCommandHandler {
	return commands.NewRechargeWalletCommandHandler(c.userUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	return commands.NewAddToCartCommandHandler(c.cartStore, c.dishCatalog())
}

func (c *CompositionRoot) CreateUpdateCartQuantityCommandHandler() commands.UpdateCartQuantityCommandHandler {
	return commands.NewUpdateCartQuantityCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateRemoveFromCartCommandHandler() commands.RemoveFromCartCommandHandler {
	return commands.NewRemoveFromCartCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.allUoWFactory(), c.cartStore, c.calculator, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAdvancePreparationCommandHandler() commands.AdvancePreparationCommandHandler {
	return commands.NewAdvancePreparationCommandHandler(c.allUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateClaimDeliveryCommandHandler() commands.ClaimDeliveryCommandHandler {
	return commands.NewClaimDeliveryCommandHandler(c.allUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.allUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSetupRestaurantCommandHandler() commands.SetupRestaurantCommandHandler {
	return commands.NewSetupRestaurantCommandHandler(c.allUoWFactory())
}

func (c *CompositionRoot) CreateAddDishCommandHandler() commands.AddDishCommandHandler {
	return commands.NewAddDishCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateSetDishAvailabilityCommandHandler() commands.SetDishAvailabilityCommandHandler {
	return commands.NewSetDishAvailabilityCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateRemoveDishCommandHandler() commands.RemoveDishCommandHandler {
	return commands.NewRemoveDishCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateAdminChangeUserRoleCommandHandler() commands.AdminChangeUserRoleCommandHandler {
	return commands.NewAdminChangeUserRoleCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateAdminCreditWalletCommandHandler() commands.AdminCreditWalletCommandHandler {
	return commands.NewAdminCreditWalletCommandHandler(c.userUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAdminResetWalletCommandHandler() commands.AdminResetWalletCommandHandler {
	return commands.NewAdminResetWalletCommandHandler(c.userUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAdminDeleteUserCommandHandler() commands.AdminDeleteUserCommandHandler {
	return commands.NewAdminDeleteUserCommandHandler(c.allUoWFactory())
}

func (c *CompositionRoot) CreateAdminSetOrderStatusCommandHandler() commands.AdminSetOrderStatusCommandHandler {
	return commands.NewAdminSetOrderStatusCommandHandler(c.allUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAdminSetRestaurantActiveCommandHandler() commands.AdminSetRestaurantActiveCommandHandler {
	return commands.NewAdminSetRestaurantActiveCommandHandler(c.allUoWFactory())
}

func (c *CompositionRoot) CreateAdminUpdateRestaurantInfoCommandHandler() commands.AdminUpdateRestaurantInfoCommandHandler {
	return commands.NewAdminUpdateRestaurantInfoCommandHandler(c.allUoWFactory())
}

func (c *CompositionRoot) CreateAdminDeleteRestaurantCommandHandler() commands.AdminDeleteRestaurantCommandHandler {
	return commands.NewAdminDeleteRestaurantCommandHandler(c.allUoWFactory())
}

func (c *CompositionRoot) CreateExpirePendingPaymentsCommandHandler() commands.ExpirePendingPaymentsCommandHandler {
	return commands.NewExpirePendingPaymentsCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.cartStore)
}

func (c *CompositionRoot) CreateGetWalletQueryHandler() queries.GetWalletQueryHandler {
	return queries.NewGetWalletQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDeliveriesQueryHandler() queries.GetAvailableDeliveriesQueryHandler {
	return queries.NewGetAvailableDeliveriesQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every handler the REST server routes to.
func (c *CompositionRoot) CreateHTTPHandlers() adapterhttp.Handlers {
	return adapterhttp.Handlers{
		RegisterUser:       c.CreateRegisterUserCommandHandler(),
		RechargeWallet:     c.CreateRechargeWalletCommandHandler(),
		AddToCart:          c.CreateAddToCartCommandHandler(),
		UpdateCartQuantity: c.CreateUpdateCartQuantityCommandHandler(),
		RemoveFromCart:     c.CreateRemoveFromCartCommandHandler(),
		ClearCart:          c.CreateClearCartCommandHandler(),
		Checkout:           c.CreateCheckoutCommandHandler(),
		AdvancePreparation: c.CreateAdvancePreparationCommandHandler(),
		ClaimDelivery:      c.CreateClaimDeliveryCommandHandler(),
		CompleteDelivery:   c.CreateCompleteDeliveryCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		SetupRestaurant:    c.CreateSetupRestaurantCommandHandler(),
		AddDish:            c.CreateAddDishCommandHandler(),
		SetDishAvailable:   c.CreateSetDishAvailabilityCommandHandler(),
		RemoveDish:         c.CreateRemoveDishCommandHandler(),

		AdminChangeUserRole:       c.CreateAdminChangeUserRoleCommandHandler(),
		AdminCreditWallet:         c.CreateAdminCreditWalletCommandHandler(),
		AdminResetWallet:          c.CreateAdminResetWalletCommandHandler(),
		AdminDeleteUser:           c.CreateAdminDeleteUserCommandHandler(),
		AdminSetOrderStatus:       c.CreateAdminSetOrderStatusCommandHandler(),
		AdminSetRestaurantActive:  c.CreateAdminSetRestaurantActiveCommandHandler(),
		AdminUpdateRestaurantInfo: c.CreateAdminUpdateRestaurantInfoCommandHandler(),
		AdminDeleteRestaurant:     c.CreateAdminDeleteRestaurantCommandHandler(),

		GetCart:                c.CreateGetCartQueryHandler(),
		GetWallet:              c.CreateGetWalletQueryHandler(),
		GetCustomerOrders:      c.CreateGetCustomerOrdersQueryHandler(),
		GetAvailableDeliveries: c.CreateGetAvailableDeliveriesQueryHandler(),
	}
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpirePendingPaymentsCommandHandler(), c.paymentMaxAge, c.logger)
}

// dishCatalog returns a restaurant repository bound to the main connection.
// Cart mutations only read dish data, so no transaction is needed.
func (c *CompositionRoot) dishCatalog() commands.DishCatalog {
	return c.uowFactory.Create().RestaurantRepository()
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) allUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
