package model

// ReportName identifies one of the read-only accounting reports.
type ReportName string

const (
	ReportBalanceGeneral      ReportName = "balance-general"
	ReportEstadoResultados    ReportName = "estado-resultados"
	ReportBalanzaComprobacion ReportName = "balanza-comprobacion"
	ReportLibroDiario         ReportName = "libro-diario"
	ReportLibroMayor          ReportName = "libro-mayor"
)

// ReportNames lists every report the backend serves.
var ReportNames = []ReportName{
	ReportBalanceGeneral,
	ReportEstadoResultados,
	ReportBalanzaComprobacion,
	ReportLibroDiario,
	ReportLibroMayor,
}

func (n ReportName) Valid() bool {
	switch n {
	case ReportBalanceGeneral, ReportEstadoResultados, ReportBalanzaComprobacion,
		ReportLibroDiario, ReportLibroMayor:
		return true
	}
	return false
}

func (n ReportName) Title() string {
	switch n {
	case ReportBalanceGeneral:
		return "Balance General"
	case ReportEstadoResultados:
		return "Estado de Resultados"
	case ReportBalanzaComprobacion:
		return "Balanza de Comprobación"
	case ReportLibroDiario:
		return "Libro Diario"
	case ReportLibroMayor:
		return "Libro Mayor"
	}
	return string(n)
}

// Report is a rendered read-only report: a titled table. The backend
// computes everything; the client only displays it.
type Report struct {
	Name    ReportName
	Title   string
	Columns []string
	Rows    [][]string
	Period  string
}
