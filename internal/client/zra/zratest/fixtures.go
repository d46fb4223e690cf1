package zratest

// Canned envelopes modelled on the demo service's sample taxpayers.
const (
	VerifyBandaOK = `{"success":true,"data":{"tpin":"123456789","name":"John Banda","business_name":"Banda Enterprises Ltd","email":"john.banda@bandaenterprises.co.zm","phone":"+260977123456","status":"Active","registration_date":"2022-01-15","tax_center":"Lusaka"}}`

	VerifySambaOK = `{"success":true,"data":{"tpin":"111222333","name":"Pollard Samba","business_name":"Samba Tech Solutions","email":"pollard.samba@sambatech.co.zm","phone":"+260966789123","status":"Active","registration_date":"2021-03-20","tax_center":"Ndola"}}`

	CalculateIncomeOK = `{"success":true,"data":{"gross_income":25000,"tax_amount":6910,"effective_tax_rate":27.64,"tax_breakdown":{"base_tax":6910}}}`

	ComplianceKalubaOK = `{"success":true,"compliance_data":{"compliance_status":"Non-Compliant","compliance_score":45,"outstanding_returns":3,"outstanding_payments":12500.0,"last_audit_date":"2022-12-10","next_audit_due":"2024-06-10","risk_level":"High","compliance_issues":["Q3 2023 Income Tax overdue","Q4 2023 VAT Return overdue","Q1 2024 PAYE Return overdue"],"penalties":1800.0}}`

	ReportBandaOK = `{"success":true,"compliance_report":{"report_generated":"2024-03-15T10:30:00","taxpayer_info":{"name":"John Banda","business_name":"Banda Enterprises Ltd","tpin":"123456789","tax_center":"Lusaka"},"compliance_summary":{"compliance_status":"Fully Compliant","compliance_score":95,"outstanding_returns":0,"outstanding_payments":0.0,"risk_level":"Low","compliance_issues":[],"penalties":0.0},"recommendations":["Maintain current compliance practices"]}}`

	NotRegistered = `{"success":false,"error":"TPIN not registered"}`

	TPINRequired = `{"error":"TPIN is required"}`
)
