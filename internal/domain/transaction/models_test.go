package transaction

import (
	"encoding/json"
	"errors"
	"testing"
)

func validParams() CreateParams {
	d, _ := ParseDate("2024-01-01")
	return CreateParams{UserID: 1, Amount: 50, Category: "food", Date: d}
}

func TestCreateParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateParams)
		wantErr bool
	}{
		{"valid", func(p *CreateParams) {}, false},
		{"missing user", func(p *CreateParams) { p.UserID = 0 }, true},
		{"negative user", func(p *CreateParams) { p.UserID = -3 }, true},
		{"zero amount", func(p *CreateParams) { p.Amount = 0 }, true},
		{"negative amount", func(p *CreateParams) { p.Amount = -10 }, true},
		{"empty category", func(p *CreateParams) { p.Category = "" }, true},
		{"zero date", func(p *CreateParams) { p.Date = Date{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)

			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("Validate() returned %T, want *ValidationError", err)
				}
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}
	if d.String() != "2024-01-15" {
		t.Errorf("ParseDate() = %s, want 2024-01-15", d)
	}

	if _, err := ParseDate("15/01/2024"); err == nil {
		t.Error("ParseDate() accepted non-ISO date")
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("ParseDate() accepted garbage")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	type payload struct {
		Date Date `json:"date"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"date":"2024-06-30"}`), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p.Date.String() != "2024-06-30" {
		t.Errorf("unmarshaled date = %s, want 2024-06-30", p.Date)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"date":"2024-06-30"}` {
		t.Errorf("marshaled = %s, want {\"date\":\"2024-06-30\"}", out)
	}
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"01-02-2024"`), &d); err == nil {
		t.Error("UnmarshalJSON accepted malformed date")
	}
}

func TestDate_ScanFormats(t *testing.T) {
	tests := []struct {
		name string
		src  any
	}{
		{"plain date text", "2024-02-29"},
		{"datetime text", "2024-02-29 00:00:00"},
		{"bytes", []byte("2024-02-29")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tt.src); err != nil {
				t.Fatalf("Scan(%v) failed: %v", tt.src, err)
			}
			if d.String() != "2024-02-29" {
				t.Errorf("Scan(%v) = %s, want 2024-02-29", tt.src, d)
			}
		})
	}
}
