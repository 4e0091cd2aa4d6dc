package api

import "testing"

func TestResolveRemarks(t *testing.T) {
	tests := []struct {
		name     string
		req      statusUpdateRequest
		expected string
	}{
		{
			name:     "canonical field",
			req:      statusUpdateRequest{Remarks: "image is blurry"},
			expected: "image is blurry",
		},
		{
			name:     "legacy rejection_remarks",
			req:      statusUpdateRequest{RejectionRemarks: "duplicate listing"},
			expected: "duplicate listing",
		},
		{
			name:     "legacy remark",
			req:      statusUpdateRequest{Remark: "missing address"},
			expected: "missing address",
		},
		{
			name:     "legacy comment",
			req:      statusUpdateRequest{Comment: "not a tourist spot"},
			expected: "not a tourist spot",
		},
		{
			name: "canonical wins over aliases",
			req: statusUpdateRequest{
				Remarks:          "canonical",
				RejectionRemarks: "alias one",
				Comment:          "alias two",
			},
			expected: "canonical",
		},
		{
			name: "alias order is fixed",
			req: statusUpdateRequest{
				Remark:  "third",
				Comment: "fourth",
			},
			expected: "third",
		},
		{
			name:     "whitespace-only canonical falls through",
			req:      statusUpdateRequest{Remarks: "  ", Comment: "real remarks"},
			expected: "real remarks",
		},
		{
			name:     "result is trimmed",
			req:      statusUpdateRequest{Remarks: "  padded  "},
			expected: "padded",
		},
		{
			name:     "all empty",
			req:      statusUpdateRequest{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveRemarks(&tt.req); got != tt.expected {
				t.Errorf("resolveRemarks() = %q, want %q", got, tt.expected)
			}
		})
	}
}
