package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderkit/pkg/order"
)

const validOrderJSON = `{
  "order_id": "ORD-20240115-A1B2C",
  "customer_email": "John.Doe@Example.com",
  "items": [
    {"product_id": "PROD-12345", "product_name": "Laptop", "category": "electronics", "quantity": 1, "unit_price": 999.99, "discount_percent": 10},
    {"product_id": "PROD-67890", "product_name": "T-Shirt", "category": "clothing", "quantity": 2, "unit_price": 29.99, "discount_percent": 5}
  ],
  "shipping_address": {"street": "123 Main St", "city": "Springfield", "state": "IL", "zip_code": "62701"}
}`

const invalidOrderYAML = `order_id: ORD-1
customer_email: not-an-email
items:
  - product_id: PROD-12345
    product_name: Apples
    category: food
    quantity: 0
    unit_price: 1.5
shipping_address:
  street: 1 Elm St
  city: Austin
  state: TX
  zip_code: "73301"
`

const infShippingYAML = `order_id: ORD-20240115-A1B2C
customer_email: a@example.com
shipping_cost: .inf
items:
  - product_id: PROD-12345
    product_name: Apples
    category: food
    quantity: 10
    unit_price: 1.5
shipping_address:
  street: 1 Elm St
  city: Austin
  state: TX
  zip_code: "73301"
`

const elderlyPatientYAML = `name: Ada
age: 82
weight: 60
height: 1.65
email: ada@example.com
contact_details:
  phone: "555-0100"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testSettings() settings {
	return settings{AppEnv: "production", Lang: "en"}
}

func runCLI(t *testing.T, stdin io.Reader, args ...string) (int, []report, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, testSettings(), order.DefaultPolicy(), stdin, &stdout, &stderr)

	var reports []report
	dec := json.NewDecoder(&stdout)
	for dec.More() {
		var r report
		require.NoError(t, dec.Decode(&r))
		reports = append(reports, r)
	}
	return code, reports, stderr.String()
}

func TestRun_AcceptedOrder(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "order.json", validOrderJSON)
	code, reports, logs := runCLI(t, nil, path)

	assert.Equal(t, exitOK, code)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Accepted)
	require.NotNil(t, reports[0].Summary)
	assert.Equal(t, 1033.53, reports[0].Summary.Total)
	assert.Equal(t, "john.doe@example.com", reports[0].Summary.CustomerEmail)
	assert.Contains(t, logs, `"msg":"order accepted"`)
	assert.Contains(t, logs, `"run_id":`)
	assert.Contains(t, logs, `"service":"ordercheck"`)
}

func TestRun_RejectedOrderAllErrorsSpanish(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "order.yaml", invalidOrderYAML)
	code, reports, _ := runCLI(t, nil, "-all", "-lang", "es_MX.UTF-8", path)

	assert.Equal(t, exitRejected, code)
	require.Len(t, reports, 1)
	assert.False(t, reports[0].Accepted)

	fields := make([]string, 0, len(reports[0].Errors))
	for _, e := range reports[0].Errors {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"order_id", "customer_email", "items[0].quantity"}, fields)
	assert.Equal(t, "customer_email no es una dirección de correo válida", reports[0].Errors[1].Message)
}

func TestRun_FirstFailureByDefault(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "order.yaml", invalidOrderYAML)
	code, reports, _ := runCLI(t, nil, path)

	assert.Equal(t, exitRejected, code)
	require.Len(t, reports[0].Errors, 1)
	assert.Equal(t, "order_id", reports[0].Errors[0].Field)
	assert.Equal(t, "format", reports[0].Errors[0].Kind)
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	code, reports, _ := runCLI(t, strings.NewReader(validOrderJSON), "-")
	assert.Equal(t, exitOK, code)
	require.Len(t, reports, 1)
	assert.Equal(t, "-", reports[0].Source)
}

func TestRun_StdinOnlyOnce(t *testing.T) {
	t.Parallel()

	code, reports, logs := runCLI(t, strings.NewReader(validOrderJSON), "-", "-")
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, reports)
	assert.Contains(t, logs, "may be given only once")
}

func TestRun_JobsOutOfRange(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "order.json", validOrderJSON)
	for _, j := range []string{"0", "-3", "100000"} {
		code, reports, _ := runCLI(t, nil, "-j", j, path, path)
		assert.Equal(t, exitOK, code, "-j %s", j)
		assert.Len(t, reports, 2, "-j %s", j)
	}
}

func TestRun_NonFiniteNumbers(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "order.yaml", infShippingYAML)

	code, reports, _ := runCLI(t, nil, path)
	assert.Equal(t, exitRejected, code)
	require.Len(t, reports[0].Errors, 1)
	assert.Equal(t, "shipping_cost", reports[0].Errors[0].Field)
	assert.Equal(t, "range", reports[0].Errors[0].Kind)

	tiny := writeFile(t, "patient.json", `{"name": "Tiny", "age": 30, "weight": 70, "height": 1e-200, "email": "tiny@example.com"}`)
	code, reports, _ = runCLI(t, nil, "-kind", "patient", tiny)
	assert.Equal(t, exitRejected, code)
	require.Len(t, reports[0].Errors, 1)
	assert.Equal(t, "height", reports[0].Errors[0].Field)
	assert.Equal(t, "cross_field", reports[0].Errors[0].Kind)
}

func TestRun_InputErrors(t *testing.T) {
	t.Parallel()

	unknown := writeFile(t, "order.json", `{"order_id": "x", "surprise": true}`)
	code, reports, _ := runCLI(t, nil, unknown, filepath.Join(t.TempDir(), "missing.json"))

	assert.Equal(t, exitRejected, code)
	require.Len(t, reports, 2)
	for _, r := range reports {
		require.Len(t, r.Errors, 1)
		assert.Equal(t, "input", r.Errors[0].Kind)
	}
}

func TestRun_Patient(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "patient.yaml", elderlyPatientYAML)
	code, reports, _ := runCLI(t, nil, "-kind", "patient", path)
	assert.Equal(t, exitRejected, code)
	require.Len(t, reports[0].Errors, 1)
	assert.Equal(t, "contact_details", reports[0].Errors[0].Field)
	assert.Equal(t, "contact_details must include emergency_contact", reports[0].Errors[0].Message)

	ok := writeFile(t, "patient.yaml", elderlyPatientYAML+`  emergency_contact: "555-0199"`+"\n")
	code, reports, _ = runCLI(t, nil, "-kind", "patient", "-domains", "example.com", ok)
	assert.Equal(t, exitOK, code)
	require.NotNil(t, reports[0].Profile)
	assert.Equal(t, "ADA", reports[0].Profile.Name)
	assert.Equal(t, 22.04, reports[0].Profile.BMI)
	assert.Equal(t, "Normal", string(reports[0].Profile.HealthStatus))
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	code, _, _ := runCLI(t, nil)
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, nil, "-kind", "invoice", "x.json")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, nil, "-no-such-flag")
	assert.Equal(t, exitUsage, code)
}

func TestRun_NewID(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	code := run(context.Background(), []string{"-new-id"}, testSettings(), order.DefaultPolicy(), nil, &stdout, io.Discard)
	assert.Equal(t, exitOK, code)
	assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{5}\n$`, stdout.String())
}
