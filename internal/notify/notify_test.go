package notify

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nirajkarki/repairdesk/internal/config"
	"github.com/nirajkarki/repairdesk/internal/domain"
)

type fakeClient struct {
	statusCode int
	respBody   []byte
	err        error
	calls      []url.Values
	urls       []string
}

func (f *fakeClient) Do(req *http.Request) (*http.Response, error) { return nil, nil }

func (f *fakeClient) Get(url string, headers http.Header) (int, []byte, http.Header, error) {
	return 0, nil, nil, nil
}

func (f *fakeClient) PostForm(reqURL string, form url.Values) (int, []byte, error) {
	f.urls = append(f.urls, reqURL)
	f.calls = append(f.calls, form)
	return f.statusCode, f.respBody, f.err
}

func newService(client *fakeClient) *Service {
	return New(&config.Config{
		SMSGatewayAddress: "https://sms.example.com/send",
		SMSAuthToken:      "token123",
	}, client)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "Mobile 98 prefix", phone: "9841000000", want: "9841000000"},
		{name: "Mobile 97 prefix", phone: "9741000000", want: "9741000000"},
		{name: "Formatted with separators", phone: "984-100-0000", want: "9841000000"},
		{name: "Country code form", phone: "977984100000", want: "7984100000"},
		{name: "Landline rejected", phone: "014412345", want: ""},
		{name: "Too short", phone: "98410", want: ""},
		{name: "Empty", phone: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.phone))
		})
	}
}

func TestDeliver(t *testing.T) {
	client := &fakeClient{statusCode: http.StatusOK, respBody: []byte(`{"error":false}`)}
	service := newService(client)

	receipt := Receipt{
		Name:         "Ram Shrestha",
		Phones:       []string{"9841000000", ""},
		Amount:       decimal.RequireFromString("600"),
		RemainingDue: decimal.RequireFromString("700"),
	}
	err := service.deliver(context.Background(), receipt)
	assert.NoError(t, err)

	// Only the valid phone produces a gateway call.
	assert.Len(t, client.calls, 1)
	form := client.calls[0]
	assert.Equal(t, "token123", form.Get("auth_token"))
	assert.Equal(t, "9841000000", form.Get("to"))
	assert.Contains(t, form.Get("text"), "600.00")
	assert.Contains(t, form.Get("text"), "700.00")
	assert.LessOrEqual(t, len(form.Get("text")), maxSMSLength)
}

func TestDeliver_GatewayError(t *testing.T) {
	client := &fakeClient{statusCode: http.StatusOK, respBody: []byte(`{"error":true,"message":"invalid token"}`)}
	service := newService(client)

	receipt := Receipt{
		Name:   "Ram Shrestha",
		Phones: []string{"9841000000"},
		Amount: decimal.RequireFromString("100"),
	}
	err := service.deliver(context.Background(), receipt)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestDeliver_NoTokenSkips(t *testing.T) {
	client := &fakeClient{}
	service := New(&config.Config{SMSGatewayAddress: "https://sms.example.com/send"}, client)

	err := service.deliver(context.Background(), Receipt{Phones: []string{"9841000000"}})
	assert.NoError(t, err)
	assert.Empty(t, client.calls)
}

func TestPaymentReceived_QueueFullDrops(t *testing.T) {
	client := &fakeClient{}
	service := newService(client)

	customer := &domain.Customer{Name: "Sita Tamang", Phone: "9841000000"}
	for i := 0; i < queueSize+10; i++ {
		service.PaymentReceived(customer, decimal.New(1, 0), decimal.Zero)
	}
	// Never blocks; queue holds at most queueSize receipts.
	assert.Len(t, service.queue, queueSize)
}

func TestPaymentReceived_NilCustomerIgnored(t *testing.T) {
	client := &fakeClient{}
	service := newService(client)

	service.PaymentReceived(nil, decimal.New(1, 0), decimal.Zero)
	assert.Empty(t, service.queue)
}
