package paygate

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"cinema-backend/pkg/utils"
)

// Gateway builds signed redirect URLs for the external payment provider and
// verifies its callback signatures. The provider signs the sorted query
// string with HMAC-SHA512.
type Gateway struct {
	config utils.PaymentConfig
}

func New(config utils.PaymentConfig) (*Gateway, error) {
	if config.TmnCode == "" || config.HashSecret == "" || config.GatewayURL == "" || config.ReturnURL == "" {
		return nil, fmt.Errorf("payment gateway configuration is incomplete")
	}
	return &Gateway{config: config}, nil
}

// BuildPaymentURL returns the redirect URL for one invoice payment.
// Amount is multiplied by 100 per the provider's convention.
func (g *Gateway) BuildPaymentURL(orderID, orderInfo string, amount float64, ipAddr string, now time.Time) string {
	// Provider rejects IPv6 addresses
	if ipAddr == "" || strings.Contains(ipAddr, ":") {
		ipAddr = "127.0.0.1"
	}

	params := map[string]string{
		"vnp_Version":    "2.1.0",
		"vnp_Command":    "pay",
		"vnp_TmnCode":    g.config.TmnCode,
		"vnp_Locale":     "vn",
		"vnp_CurrCode":   "VND",
		"vnp_TxnRef":     orderID,
		"vnp_OrderInfo":  orderInfo,
		"vnp_OrderType":  "other",
		"vnp_Amount":     fmt.Sprintf("%d", int64(amount*100)),
		"vnp_ReturnUrl":  g.config.ReturnURL,
		"vnp_IpAddr":     ipAddr,
		"vnp_CreateDate": now.Format("20060102150405"),
	}

	signData := encodeSorted(params)
	params["vnp_SecureHash"] = g.sign(signData)

	return g.config.GatewayURL + "?" + encodeSorted(params)
}

// VerifyCallback checks the signature on a gateway callback. The secure hash
// params themselves are excluded from the signed payload.
func (g *Gateway) VerifyCallback(query url.Values) bool {
	secureHash := query.Get("vnp_SecureHash")
	if secureHash == "" {
		return false
	}

	params := make(map[string]string)
	for key := range query {
		if key == "vnp_SecureHash" || key == "vnp_SecureHashType" {
			continue
		}
		if v := query.Get(key); v != "" {
			params[key] = v
		}
	}

	expected := g.sign(encodeSorted(params))
	return hmac.Equal([]byte(expected), []byte(secureHash))
}

func (g *Gateway) sign(data string) string {
	mac := hmac.New(sha512.New, []byte(g.config.HashSecret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// encodeSorted renders params as k=v&k=v, keys sorted, values query-escaped
// the way the provider expects (spaces as '+').
func encodeSorted(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, url.QueryEscape(k)+"="+url.QueryEscape(params[k]))
	}
	return strings.Join(pairs, "&")
}
