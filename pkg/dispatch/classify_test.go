package dispatch

import "testing"

func TestClassifyStatusWinsOverCode(t *testing.T) {
	cases := []struct {
		name   string
		status int
		code   int64
		want   Kind
	}{
		{"bad request beats remote internal band", 400, 5001, KindBadRequest},
		{"signature beats payment band", 401, 4000, KindSignatureInvalid},
		{"fingerprint beats validation band", 403, 2500, KindFingerprintInvalid},
		{"unprocessable beats auth band", 422, 1500, KindValidationFailed},
		{"server fault beats payment band", 500, 3999, KindServerFault},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.status, tc.code, true); got != tc.want {
				t.Fatalf("Classify(%d, %d) = %v, want %v", tc.status, tc.code, got, tc.want)
			}
		})
	}
}

func TestClassifyBandBoundaries(t *testing.T) {
	cases := []struct {
		code int64
		want Kind
	}{
		{999, KindUnclassified},
		{1000, KindAuthenticationFailed},
		{1999, KindAuthenticationFailed},
		{2000, KindValidationFailed},
		{2999, KindValidationFailed},
		{3000, KindPaymentRejected},
		{4999, KindPaymentRejected},
		{5000, KindRemoteInternal},
		{0, KindUnclassified},
		{-1, KindUnclassified},
	}
	// 200 with a non-zero errorCode reaches the classifier; 200 matches no
	// explicit status, so only the bands decide.
	for _, tc := range cases {
		if got := Classify(200, tc.code, true); got != tc.want {
			t.Fatalf("Classify(200, %d) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestClassifyAbsentCodeFallsBack(t *testing.T) {
	if got := Classify(418, 0, false); got != KindUnclassified {
		t.Fatalf("Classify(418, absent) = %v, want %v", got, KindUnclassified)
	}
	if got := Classify(500, 0, false); got != KindServerFault {
		t.Fatalf("Classify(500, absent) = %v, want %v", got, KindServerFault)
	}
}
