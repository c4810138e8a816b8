package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRequestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write request file: %v", err)
	}
	return path
}

func TestLoadRequestFile(t *testing.T) {
	path := writeRequestFile(t, `
operation: refund
params:
  orderId: order-7
  amount: 2500
`)

	rf, err := loadRequestFile(path)
	if err != nil {
		t.Fatalf("loadRequestFile: %v", err)
	}
	if rf.Operation != "refund" {
		t.Fatalf("operation = %q", rf.Operation)
	}
	if got := stringParam(rf.Params, "orderId"); got != "order-7" {
		t.Fatalf("orderId = %q", got)
	}
	if got := int64Param(rf.Params, "amount"); got != 2500 {
		t.Fatalf("amount = %d", got)
	}
}

func TestLoadRequestFileRejectsMissingOperation(t *testing.T) {
	path := writeRequestFile(t, `
params:
  orderId: order-7
`)
	if _, err := loadRequestFile(path); err == nil {
		t.Fatalf("expected error for missing operation")
	}
}

func TestLoadRequestFileNestedParams(t *testing.T) {
	path := writeRequestFile(t, `
operation: register
params:
  amount: 150000.5
  currency: 860
  paymentParams:
    payType: TWO_STEP
  merchantParams:
    orderTag: weekly
`)

	rf, err := loadRequestFile(path)
	if err != nil {
		t.Fatalf("loadRequestFile: %v", err)
	}
	if got := floatParam(rf.Params, "amount"); got != 150000.5 {
		t.Fatalf("amount = %v", got)
	}
	if got := intParam(rf.Params, "currency"); got != 860 {
		t.Fatalf("currency = %d", got)
	}
	pp := mapParam(rf.Params, "paymentParams")
	if pp == nil || pp["payType"] != "TWO_STEP" {
		t.Fatalf("paymentParams = %v", pp)
	}
}

func TestItemsParam(t *testing.T) {
	path := writeRequestFile(t, `
operation: receiptGenerate
params:
  items:
    - name: coffee
      amount: 150000
    - name: tea
      amount: 90000
`)

	rf, err := loadRequestFile(path)
	if err != nil {
		t.Fatalf("loadRequestFile: %v", err)
	}
	items := itemsParam(rf.Params, "items")
	if len(items) != 2 {
		t.Fatalf("items = %v", items)
	}
	if items[0]["name"] != "coffee" {
		t.Fatalf("items[0] = %v", items[0])
	}
}
