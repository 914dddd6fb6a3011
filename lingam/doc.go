// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

// Package lingam discovers a causal order and linear effect coefficients among
// continuous variables generated by a Linear Non-Gaussian Acyclic Model.
//
// Variables are peeled off one at a time: in every round the variable whose
// residualized peers look most independent of it (by a kernel estimate of
// mutual information) is taken as the next exogenous variable, its effects on
// the remaining variables are recorded, and the remaining variables are
// replaced by their residuals on it.
//
//	res, err := lingam.Fit(X, lingam.Options{Processes: 4})
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Order)
//	fmt.Printf("%v\n", mat.Formatted(res.Coefficients))
package lingam
