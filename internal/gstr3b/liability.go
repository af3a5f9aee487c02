package gstr3b

import "math"

// Liability is the net payable position derived from an assembled report.
type Liability struct {
	OutputTax      Heads   `json:"outputTax"`
	NetITC         Heads   `json:"netITC"`
	NetLiability   Heads   `json:"netLiability"`
	TotalLiability float64 `json:"totalLiability"`
}

// ComputeLiability derives output tax, net credit and net payable tax per
// head from an assembled report. Zero-rated supplies contribute to the
// integrated and cess heads only; their shape carries no central or state
// component, so none is added. Net liability is clamped at zero per head
// because excess credit is carried forward outside this summary, while net
// ITC itself keeps its sign.
func ComputeLiability(r *Report) Liability {
	s := r.Section31
	outputTax := Heads{
		Integrated: s.OutwardTaxable.Integrated + s.OutwardZero.Integrated + s.InwardReverseCharge.Integrated,
		Central:    s.OutwardTaxable.Central + s.InwardReverseCharge.Central,
		State:      s.OutwardTaxable.State + s.InwardReverseCharge.State,
		Cess:       s.OutwardTaxable.Cess + s.OutwardZero.Cess + s.InwardReverseCharge.Cess,
	}
	outputTax.round()

	netITC := r.Section4.ITC.Net

	netLiability := Heads{
		Integrated: math.Max(0, outputTax.Integrated-netITC.Integrated),
		Central:    math.Max(0, outputTax.Central-netITC.Central),
		State:      math.Max(0, outputTax.State-netITC.State),
		Cess:       math.Max(0, outputTax.Cess-netITC.Cess),
	}
	netLiability.round()

	total := netLiability.Integrated + netLiability.Central + netLiability.State + netLiability.Cess

	return Liability{
		OutputTax:      outputTax,
		NetITC:         netITC,
		NetLiability:   netLiability,
		TotalLiability: round2(total),
	}
}
