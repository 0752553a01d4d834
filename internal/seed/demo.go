package seed

import (
	"tcnursery/internal/core/types"
	"tcnursery/internal/domain/registers/hardening"
	"tcnursery/internal/domain/registers/incubation"
	"tcnursery/internal/domain/registers/inventory"
	"tcnursery/internal/domain/registers/media"
	"tcnursery/internal/domain/registers/sampling"
	"tcnursery/internal/domain/registers/subculture"
	"tcnursery/internal/domain/registers/supplier"
)

func demoMedia() []*media.Preparation {
	row := func(date, code, name, batch, volume, ph, operator string) *media.Preparation {
		p := media.NewPreparation(date, code, name)
		p.BatchNumber = batch
		p.VolumeLiters = types.MustQuantity(volume)
		p.PH = types.MustQuantity(ph)
		p.Operator = operator
		return p
	}
	return []*media.Preparation{
		row("2024-01-08", "MS-01", "MS Basal", "MB-2024-00001", "20", "5.8", "Anita"),
		row("2024-01-08", "MS-BAP", "MS + BAP 4mg", "MB-2024-00002", "15", "5.7", "Anita"),
		row("2024-01-15", "MS-01", "MS Basal", "MB-2024-00003", "20", "5.8", "Ravi"),
		row("2024-01-22", "MS-IBA", "MS + IBA 1mg", "MB-2024-00004", "10", "5.8", "Ravi"),
		row("2024-02-05", "WPM-01", "Woody Plant Medium", "MB-2024-00005", "8", "5.6", "Anita"),
		row("2024-02-05", "MS-BAP", "MS + BAP 4mg", "MB-2024-00006", "15", "5.7", "Meera"),
	}
}

func demoIncubation() []*incubation.Batch {
	row := func(date, crop, batch, mediaCode string, bottles int, temp string, light int, operator string) *incubation.Batch {
		b := incubation.NewBatch(date, crop, bottles)
		b.BatchNumber = batch
		b.MediaCode = mediaCode
		b.TemperatureC = types.MustQuantity(temp)
		b.LightHours = light
		b.Operator = operator
		return b
	}
	return []*incubation.Batch{
		row("2024-01-10", "Banana G9", "IN-2024-00001", "MS-BAP", 240, "25", 16, "Ravi"),
		row("2024-01-10", "Ginger", "IN-2024-00002", "MS-01", 120, "26", 16, "Ravi"),
		row("2024-01-17", "Banana G9", "IN-2024-00003", "MS-BAP", 300, "25", 16, "Meera"),
		row("2024-01-24", "Strawberry", "IN-2024-00004", "MS-01", 90, "22.5", 14, "Anita"),
		row("2024-02-07", "Turmeric", "IN-2024-00005", "MS-BAP", 150, "26", 16, "Meera"),
		row("2024-02-07", "Banana Red", "IN-2024-00006", "MS-BAP", 80, "25", 16, "Ravi"),
	}
}

func demoSubculture() []*subculture.Transfer {
	row := func(date, crop, batch string, stage subculture.Stage, mother, fresh, contaminated int, operator string) *subculture.Transfer {
		t := subculture.NewTransfer(date, crop, stage)
		t.BatchNumber = batch
		t.MotherBottles = mother
		t.NewBottles = fresh
		t.Contaminated = contaminated
		t.Operator = operator
		return t
	}
	return []*subculture.Transfer{
		row("2024-02-01", "Banana G9", "SC-2024-00001", subculture.StageInitiation, 40, 120, 6, "Ravi"),
		row("2024-02-01", "Ginger", "SC-2024-00002", subculture.StageInitiation, 30, 75, 9, "Meera"),
		row("2024-02-15", "Banana G9", "SC-2024-00003", subculture.StageMultiplication, 110, 420, 12, "Ravi"),
		row("2024-02-22", "Strawberry", "SC-2024-00004", subculture.StageMultiplication, 25, 90, 2, "Anita"),
		row("2024-03-07", "Banana G9", "SC-2024-00005", subculture.StageRooting, 400, 800, 15, "Meera"),
		row("2024-03-07", "Turmeric", "SC-2024-00006", subculture.StageMultiplication, 60, 180, 7, "Anita"),
	}
}

func demoSampling() []*sampling.Sample {
	row := func(date, crop, batch string, no int, status sampling.Status, lab, result string) *sampling.Sample {
		s := sampling.NewSample(date, crop, batch)
		s.SampleNo = no
		s.Status = status
		s.Lab = lab
		s.Result = result
		return s
	}
	return []*sampling.Sample{
		row("2024-02-20", "Banana G9", "SC-2024-00003", 1, sampling.StatusPassed, "NCS-TCP Lab", "BBTV and BSV negative"),
		row("2024-02-20", "Banana G9", "SC-2024-00003", 2, sampling.StatusPassed, "NCS-TCP Lab", "BBTV and BSV negative"),
		row("2024-02-20", "Ginger", "SC-2024-00002", 3, sampling.StatusFailed, "NCS-TCP Lab", "Bacterial contamination"),
		row("2024-03-05", "Strawberry", "SC-2024-00004", 1, sampling.StatusTesting, "AgriBio Diagnostics", ""),
		row("2024-03-12", "Banana G9", "SC-2024-00005", 1, sampling.StatusReceived, "NCS-TCP Lab", ""),
	}
}

func demoHardening() []*hardening.Batch {
	row := func(date string, stage hardening.Stage, crop, batch string, plants, mortality int, location string) *hardening.Batch {
		b := hardening.NewBatch(date, stage, crop, plants)
		b.BatchNumber = batch
		b.Mortality = mortality
		b.Location = location
		return b
	}
	return []*hardening.Batch{
		row("2024-03-20", hardening.StagePrimary, "Banana G9", "HB-2024-00001", 780, 39, "Polyhouse A"),
		row("2024-03-27", hardening.StagePrimary, "Turmeric", "HB-2024-00002", 170, 14, "Polyhouse B"),
		row("2024-04-24", hardening.StageSecondary, "Banana G9", "HB-2024-00003", 741, 22, "Shade net 1"),
		row("2024-05-02", hardening.StageSecondary, "Turmeric", "HB-2024-00004", 156, 9, "Shade net 2"),
	}
}

func demoInventory() []*inventory.Movement {
	row := func(date, item, category string, dir inventory.Direction, qty, unit, supplierName, ref string) *inventory.Movement {
		m := inventory.NewMovement(date, item, category, dir, types.MustQuantity(qty), unit)
		m.SupplierName = supplierName
		m.Reference = ref
		return m
	}
	return []*inventory.Movement{
		row("2024-01-05", "Agar", "Chemicals", inventory.DirectionIn, "10", "kg", "HiMedia Laboratories", "GRN-2024-00001"),
		row("2024-01-05", "Sucrose", "Chemicals", inventory.DirectionIn, "50", "kg", "HiMedia Laboratories", "GRN-2024-00002"),
		row("2024-01-06", "Culture bottles", "Glassware", inventory.DirectionIn, "2000", "pcs", "Borosil", "GRN-2024-00003"),
		row("2024-01-08", "Agar", "Chemicals", inventory.DirectionOut, "0.28", "kg", "", "ISS-2024-00001"),
		row("2024-01-08", "Sucrose", "Chemicals", inventory.DirectionOut, "1.05", "kg", "", "ISS-2024-00002"),
		row("2024-01-10", "Culture bottles", "Glassware", inventory.DirectionOut, "360", "pcs", "", "ISS-2024-00003"),
		row("2024-02-02", "Cocopeat", "Potting", inventory.DirectionIn, "40", "bag", "GreenGrow Inputs", "GRN-2024-00004"),
		row("2024-03-18", "Cocopeat", "Potting", inventory.DirectionOut, "12", "bag", "", "ISS-2024-00004"),
	}
}

func demoSuppliers() []*supplier.Supplier {
	row := func(date, name, category, contact, phone, email, city string) *supplier.Supplier {
		s := supplier.NewSupplier(date, name, category)
		s.Contact = contact
		s.Phone = phone
		s.Email = email
		s.City = city
		return s
	}
	return []*supplier.Supplier{
		row("2024-01-05", "HiMedia Laboratories", "Chemicals", "Sales desk", "+91 22 6147 1919", "sales@himedia.example", "Mumbai"),
		row("2024-01-06", "Borosil", "Glassware", "K. Shah", "+91 22 6740 6300", "orders@borosil.example", "Mumbai"),
		row("2024-02-02", "GreenGrow Inputs", "Potting", "P. Nair", "+91 80 4110 2200", "", "Bengaluru"),
		row("2024-02-02", "Sigma Scientific", "Chemicals", "", "", "", "Pune"),
	}
}
