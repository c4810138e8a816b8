package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/inplat-tech/checkout-go/internal/config"
	"github.com/inplat-tech/checkout-go/internal/logger"
	"github.com/inplat-tech/checkout-go/pkg/checkout"
	"github.com/inplat-tech/checkout-go/pkg/dispatch"
	"github.com/inplat-tech/checkout-go/pkg/receipts"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "checkoutctl failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) != 2 {
		return fmt.Errorf("usage: checkoutctl <request.yaml>")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	req, err := loadRequestFile(os.Args[1])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	body, err := execute(ctx, cfg, log, req)
	if err != nil {
		var apiErr *dispatch.Error
		if errors.As(err, &apiErr) {
			log.Errorw("request failed",
				"operation", req.Operation,
				"kind", apiErr.Kind.String(),
				"status", apiErr.HTTPStatus,
				"errorCode", apiErr.AppErrorCode,
				"message", apiErr.Message(),
			)
		}
		return err
	}

	out, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func execute(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger, req *RequestFile) (map[string]any, error) {
	common := []dispatch.Option{
		dispatch.WithMode(cfg.Mode()),
		dispatch.WithTimeout(cfg.Timeout),
		dispatch.WithLogger(log),
	}

	if isReceiptOperation(req.Operation) {
		cl, err := receipts.New(cfg.ReceiptFingerprint, append(common, dispatch.WithBaseURL(cfg.ReceiptBaseURL))...)
		if err != nil {
			return nil, err
		}
		defer cl.Close()

		f, err := receiptFutureFor(ctx, cl, req)
		if err != nil {
			return nil, err
		}
		return f.Wait(ctx)
	}

	creds := dispatch.Credentials{
		Signature:       cfg.Signature,
		TerminalID:      cfg.TerminalID,
		BearerToken:     cfg.BearerToken,
		Fingerprint:     cfg.Fingerprint,
		APIKey:          cfg.APIKey,
		ContentLanguage: cfg.ContentLanguage,
	}
	cl, err := checkout.New(creds, append(common, dispatch.WithBaseURL(cfg.BaseURL))...)
	if err != nil {
		return nil, err
	}
	defer cl.Close()

	f, err := checkoutFutureFor(ctx, cl, req)
	if err != nil {
		return nil, err
	}
	return f.Wait(ctx)
}

func checkoutFutureFor(ctx context.Context, cl *checkout.Client, req *RequestFile) (*dispatch.Future, error) {
	p := req.Params
	switch req.Operation {
	case "register":
		return cl.Register(ctx, checkout.RegisterParams{
			Amount:             floatParam(p, "amount"),
			ClientID:           stringParam(p, "clientId"),
			Currency:           intParam(p, "currency"),
			OrderNumber:        stringParam(p, "orderNumber"),
			PaymentDetails:     stringParam(p, "paymentDetails"),
			SuccessURL:         stringParam(p, "successUrl"),
			FailureURL:         stringParam(p, "failureUrl"),
			ViewType:           stringParam(p, "viewType"),
			PaymentParams:      mapParam(p, "paymentParams"),
			MerchantParams:     mapParam(p, "merchantParams"),
			SessionTimeoutSecs: intParam(p, "sessionTimeoutSecs"),
		}), nil
	case "merchantPay":
		return cl.MerchantPay(ctx, mapParam(p, "processData"), stringParam(p, "orderId")), nil
	case "orderStatus":
		return cl.OrderStatus(ctx, stringParam(p, "orderId")), nil
	case "operationState":
		return cl.OperationState(ctx, stringParam(p, "operationId")), nil
	case "complete":
		return cl.Complete(ctx, stringParam(p, "orderId"), int64Param(p, "amount")), nil
	case "refund":
		return cl.Refund(ctx, stringParam(p, "orderId"), int64Param(p, "amount")), nil
	case "reverse":
		return cl.Reverse(ctx, stringParam(p, "orderId"), int64Param(p, "amount")), nil
	case "bindings":
		return cl.Bindings(ctx, stringParam(p, "clientId")), nil
	}
	return nil, fmt.Errorf("unknown operation %q", req.Operation)
}

func receiptFutureFor(ctx context.Context, cl *receipts.Client, req *RequestFile) (*dispatch.Future, error) {
	p := req.Params
	switch req.Operation {
	case "receiptHealth":
		return cl.Health(ctx), nil
	case "receiptGenerate":
		return cl.GenerateReceipt(ctx, receipts.GenerateParams{
			OperationID: stringParam(p, "operationId"),
			DateTime:    stringParam(p, "dateTime"),
			CashAmount:  int64Param(p, "cashAmount"),
			CardAmount:  int64Param(p, "cardAmount"),
			PhoneNumber: stringParam(p, "phoneNumber"),
			Items:       itemsParam(p, "items"),
			PaymentID:   stringParam(p, "paymentId"),
			ReceiptType: intParam(p, "receiptType"),
		}), nil
	case "receiptRefund":
		return cl.RefundReceipt(ctx, receipts.RefundParams{
			OperationID: stringParam(p, "operationId"),
			DateTime:    stringParam(p, "dateTime"),
			CashAmount:  int64Param(p, "cashAmount"),
			CardAmount:  int64Param(p, "cardAmount"),
			Items:       itemsParam(p, "items"),
			PaymentID:   stringParam(p, "paymentId"),
			ReceiptType: intParam(p, "receiptType"),
		}), nil
	}
	return nil, fmt.Errorf("unknown receipt operation %q", req.Operation)
}

func isReceiptOperation(op string) bool {
	switch op {
	case "receiptHealth", "receiptGenerate", "receiptRefund":
		return true
	}
	return false
}
