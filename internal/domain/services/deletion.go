package services

import (
	"fmt"
	"strings"
	"time"

	"consent-theater/internal/domain/models"
)

// DefaultDeletionDataTypes is used when the caller does not name the data
// categories to erase.
var DefaultDeletionDataTypes = []string{
	"Contact information and address book data",
	"Device identifiers and advertising IDs",
	"Location history",
	"Usage and behavioral analytics",
}

// GenerateDeletionRequest produces a data-erasure request letter for the
// given company under the named regulation ("dpdpa" or "gdpr"; anything else
// defaults to DPDPA).
func GenerateDeletionRequest(userName, userEmail, company, regulation string, dataTypes []string) models.DeletionTemplate {
	if len(dataTypes) == 0 {
		dataTypes = DefaultDeletionDataTypes
	}
	date := time.Now().Format("2 January 2006")

	if strings.EqualFold(regulation, "gdpr") {
		return gdprRequest(userName, userEmail, company, dataTypes, date)
	}
	return dpdpaRequest(userName, userEmail, company, dataTypes, date)
}

func dpdpaRequest(userName, userEmail, company string, dataTypes []string, date string) models.DeletionTemplate {
	return models.DeletionTemplate{
		Subject: fmt.Sprintf("Data Erasure Request Under DPDPA 2023 — %s", userName),
		Body: fmt.Sprintf(`To the Data Protection Officer,
%s

Dear Sir/Madam,

I am writing to exercise my right to erasure of personal data under Section 12 of the Digital Personal Data Protection Act, 2023 (DPDPA).

I request the complete deletion of all personal data that %s has collected, processed, or stored about me. This includes, but is not limited to:

%s

My details for identification purposes:
• Full Name: %s
• Email: %s

As per Section 12(1) of the DPDPA, I request that you:
1. Erase all my personal data from your systems
2. Direct any data processors acting on your behalf to do the same
3. Confirm completion of this erasure within 30 days

Please acknowledge receipt of this request within 48 hours and complete the erasure within 30 days as mandated by law.

If you require additional information to verify my identity, please contact me at the email address provided above.

Thank you for your prompt attention to this matter.

Sincerely,
%s
%s
Date: %s`, company, company, bulleted(dataTypes), userName, userEmail, userName, userEmail, date),
	}
}

func gdprRequest(userName, userEmail, company string, dataTypes []string, date string) models.DeletionTemplate {
	return models.DeletionTemplate{
		Subject: fmt.Sprintf("Right to Erasure Request Under GDPR Article 17 — %s", userName),
		Body: fmt.Sprintf(`To the Data Protection Officer,
%s

Dear Sir/Madam,

I am writing to exercise my right to erasure under Article 17 of the General Data Protection Regulation (GDPR).

I request the erasure of all personal data that %s holds about me, including but not limited to:

%s

My details for identification purposes:
• Full Name: %s
• Email: %s

In accordance with Article 17, I ask that you:
1. Erase my personal data without undue delay
2. Notify any recipients to whom the data was disclosed, per Article 19
3. Confirm completion of the erasure within one month of this request

If you believe an exemption applies, please identify the specific legal basis in your response.

Thank you for your prompt attention to this matter.

Sincerely,
%s
%s
Date: %s`, company, company, bulleted(dataTypes), userName, userEmail, userName, userEmail, date),
	}
}

func bulleted(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}
