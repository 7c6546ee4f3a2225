package payment

import (
	"Savoria-Backend/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	// Gateway is the slice of the midtrans API the payment service uses.
	Gateway interface {
		CreateTransaction(req *snap.Request) (*snap.Response, error)
		CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, error)
	}

	midtransGateway struct {
		snapClient snap.Client
		coreClient coreapi.Client
	}
)

func NewMidtransGateway() Gateway {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}
	serverKey := utils.GetConfig("SERVER_KEY")

	var snapClient snap.Client
	snapClient.New(serverKey, env)
	var coreClient coreapi.Client
	coreClient.New(serverKey, env)

	return &midtransGateway{
		snapClient: snapClient,
		coreClient: coreClient,
	}
}

func (g *midtransGateway) CreateTransaction(req *snap.Request) (*snap.Response, error) {
	resp, midErr := g.snapClient.CreateTransaction(req)
	if midErr != nil {
		return nil, midErr
	}
	return resp, nil
}

func (g *midtransGateway) CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, error) {
	resp, midErr := g.coreClient.CheckTransaction(orderID)
	if midErr != nil {
		return nil, midErr
	}
	return resp, nil
}
